package main

import (
	"os"

	"github.com/cobalt/screentime/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
