// Package main provides the tabwright command-line tool.
package main

import (
	"os"

	"github.com/tabwright/tabwright/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
