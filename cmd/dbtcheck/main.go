// Package main provides the dbtcheck CLI entrypoint.
package main

import (
	"os"

	"github.com/dbtcheck/dbtcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
