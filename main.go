package main

import (
	"os"

	"github.com/danreyes/reckon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
