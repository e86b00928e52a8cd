// Command realmath is an arbitrary-precision calculator built on
// pkg/unified. It evaluates one expression per invocation, or reads a
// line at a time from standard input when run with no arguments.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
