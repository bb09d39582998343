package main

import (
	"os"

	"github.com/goforj/menucache/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
