package main

import (
	"os"

	"github.com/ipedrax/pitch-perfect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
