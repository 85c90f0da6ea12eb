package main

import (
	"fmt"
	"os"

	"github.com/guikarist/gym-tictactoe/internal/cli"
)

// main - is the entry point of the application. Config loading panics on error, so panics are
// reported and turned into a non-zero exit.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
