package main

import (
	"os"

	"github.com/abhisek/wikiquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
