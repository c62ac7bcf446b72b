package main

import (
	"os"

	"github.com/lucasgdosr/dvec/cmd/dvecsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
