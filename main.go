package main

import (
	"os"

	"github.com/abhisek/teachmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
