package main

import (
	"os"

	"github.com/bazs0328/graduation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
