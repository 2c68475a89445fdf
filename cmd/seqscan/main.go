// Command seqscan discovers and describes numbered file sequences.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/seqscan/internal/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seqscan: %v\n", err)
		os.Exit(1)
	}
}
