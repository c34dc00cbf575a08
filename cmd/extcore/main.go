// Command extcore inspects extension-composition configurations built
// from the state package, the way cuelang.org/go/cmd/cue inspects
// resolved CUE instances.
package main

import (
	"os"

	"github.com/extcore/extcore/cmd/extcore/cmd"
)

func main() {
	root := cmd.New()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
