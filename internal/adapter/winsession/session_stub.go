//go:build !windows

package winsession

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Control struct{}

func New(log zerolog.Logger) *Control {
	return &Control{}
}

func (c *Control) LogoffUser(username string) error {
	return fmt.Errorf("session control only supported on Windows")
}
