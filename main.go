package main

import (
	"os"

	"github.com/sarveshai94-commits/academyquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
