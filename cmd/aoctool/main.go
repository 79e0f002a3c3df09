// Command aoctool exposes the aoclib helpers on the command line: digit
// splitting, number theory, bus-schedule CRT solving, grid maze search and
// direction turning.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
