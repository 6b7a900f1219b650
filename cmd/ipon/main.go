package main

import (
	"os"

	"github.com/ipon-dev/ipon/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
