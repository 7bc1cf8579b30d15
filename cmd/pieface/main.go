// SPDX-License-Identifier: MIT

// Command pieface fits minimum-volume enclosing ellipsoids to coordination
// polyhedra read from plain-text site lists.
//
//	pieface fit TiO6.txt --verbosity 3
//	pieface batch sites/*.txt --workers 8 --db results.db --output report.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
