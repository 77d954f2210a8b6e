// Package main is the entry point for the fuzzcollect CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/fuzzcollect/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
