package main

import (
	"os"

	"github.com/praxislabs/praxis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
