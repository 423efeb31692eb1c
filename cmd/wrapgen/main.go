package main

import (
	"os"

	"github.com/wrapgen/wrapgen/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
