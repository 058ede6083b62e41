// Command formdoc encodes, imports and authors form documents.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
