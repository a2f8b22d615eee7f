package main

import (
	"os"

	"github.com/athanorlabs/go-wavesauth/cmd/wavesauth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
