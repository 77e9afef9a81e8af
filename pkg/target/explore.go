/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: explore.go
Description: Branch-nested demonstration target for coverage-guided fuzzing.
Each nested condition guards a deeper branch, with a deliberate crash hidden
at maximum depth so a fuzzer has something to find.
*/

package target

import (
	"fmt"
	"io"
	"os"
)

// CrashMessage is the panic value raised when the deepest branch is reached.
const CrashMessage = "branch 4 has been reached"

// magic is the string gate in front of the crash branch.
const magic = "FUZZING"

// Explore walks the nested branches for the given inputs, writing one
// diagnostic line per branch to w. Reaching the deepest branch panics with
// CrashMessage; every other path ends with a separator line.
//
// The b-a comparison saturates: when b < a the difference is treated as
// zero, so branch 3 always means "b exceeds a by more than 100000".
func Explore(w io.Writer, a, b uint32, c string) {
	fmt.Fprintf(w, "a: %d, b: %d, c: %s\n", a, b, c)

	if a >= 20000 {
		fmt.Fprintln(w, "branch 1")

		if b >= 2000000 {
			fmt.Fprintln(w, "branch 2")

			if saturatingSub(b, a) > 100000 {
				fmt.Fprintln(w, "branch 3")

				if c == magic {
					fmt.Fprintln(w, "branch 4")
					panic(CrashMessage)
				}
			}
		}
	} else {
		fmt.Fprintln(w, "this is the default path")
	}
	fmt.Fprintln(w, "---------")
}

// ExploreMe is the stdout-bound form of Explore.
func ExploreMe(a, b uint32, c string) {
	Explore(os.Stdout, a, b, c)
}

func saturatingSub(x, y uint32) uint32 {
	if x < y {
		return 0
	}
	return x - y
}
