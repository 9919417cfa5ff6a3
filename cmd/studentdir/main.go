package main

import (
	"os"

	"studentdir/cmd/studentdir/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
