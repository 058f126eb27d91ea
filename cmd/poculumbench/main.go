// poculumbench runs the Poculum-vs-JSON wire-size benchmark and prints a
// markdown summary to stdout (SPEC_FULL.md §6.4).
package main

import (
	"fmt"
	"os"

	"github.com/poculum/poculum/poculum/bench"
)

func main() {
	results, err := bench.Run(bench.DefaultCases())
	if err != nil {
		fmt.Fprintf(os.Stderr, "poculumbench: %v\n", err)
		os.Exit(1)
	}

	bench.WriteMarkdown(os.Stdout, results)
}
