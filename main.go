package main

import (
	"os"

	"github.com/tanvi/lexi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
