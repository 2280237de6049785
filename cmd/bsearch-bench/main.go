// Command bsearch-bench times an iterative binary search over synthetic
// sorted arrays and prints the results as CSV.
package main

import (
	"os"

	"github.com/eunmann/bsearch-bench/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(os.Stderr, cli.Run(os.Args[1:])))
}
