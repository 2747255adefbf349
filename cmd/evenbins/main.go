// Command evenbins runs the evenbins solvers on YAML or JSON input files.
//
// Usage:
//
//	evenbins partition weights.yaml -k 3
//	evenbins bin categories.yaml --bins 4 --order first-seen
//	evenbins --config evenbins.yaml --log-level debug partition weights.yaml
//
// Results are printed to stdout as YAML; logs go to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "evenbins:", err)
		os.Exit(1)
	}
}
