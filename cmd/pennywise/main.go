package main

import (
	"os"

	"github.com/pennywise-dev/pennywise/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
