package main

import (
	"os"

	"github.com/dgallion1/citator/cmd/citator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
