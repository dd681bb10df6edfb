// Command quasi is the host program for quasi dual-value states.
package main

import (
	"fmt"
	"os"

	"github.com/talgya/quasi/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
