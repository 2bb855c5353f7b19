package main

import (
	"os"

	"github.com/msto63/mCW/cmd/humboldt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
