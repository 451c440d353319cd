package main

import (
	"os"

	"github.com/kirbygold/goldsuite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
