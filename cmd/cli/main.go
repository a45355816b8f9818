// linefold - Actor Assignment Consolidation Tool
//
// linefold reformats loosely structured actor assignment script files into
// a single consolidated, numbered line file, and renumbers line identifiers
// in a batch of script files by a fixed offset.
package main

import (
	"os"

	"linefold/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
