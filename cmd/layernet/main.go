// Command layernet runs one topology-design trial end to end: load a
// topology file, synthesize demand, run the iterative bypass designer, and
// write the plain-text reporting artifacts to an output directory. Loading
// a TOML config file, decorating a progress bar, and invoking the Python
// plotting scripts the reference implementation shells out to are all left
// to external tooling; this binary only exercises the core.
package main

import (
	"fmt"
	"os"

	"github.com/optrans/layernet/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
