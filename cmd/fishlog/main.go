package main

import (
	"os"

	"github.com/fishlog/cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
