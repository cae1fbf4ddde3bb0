package main

import (
	"os"

	"sfecalc/cmd/sfecalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
