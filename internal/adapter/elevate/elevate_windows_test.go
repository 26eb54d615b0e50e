//go:build windows

package elevate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLineQuotesSpacedArguments(t *testing.T) {
	got := commandLine([]string{"restart", "set", "--at", "02:00", "--message", "save your work now"})
	assert.Equal(t, `restart set --at 02:00 --message "save your work now"`, got)
}

func TestCommandLineEmpty(t *testing.T) {
	assert.Equal(t, "", commandLine(nil))
}
