// Command json-split splits a JSON array of objects into one file per object.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/json-split/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
