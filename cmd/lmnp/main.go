package main

import (
	"os"

	"github.com/lmnp-dev/lmnp/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
