// Command gridif computes N-1/N-2 influence factors for a set of control
// areas over a shared grid snapshot, writing one branch CSV and one
// generator CSV per country plus a topology snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridif/cmd/gridif/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
