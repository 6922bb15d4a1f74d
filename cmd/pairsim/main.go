package main

import (
	"os"

	"github.com/veilswap/veil/cmd/pairsim/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
