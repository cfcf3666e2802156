// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
markercheck is an example program that lifts one or more PEP 508
environment marker expressions to the marker algebra and reports, for each
pair, whether they are disjoint and whether their conjunction or
disjunction collapses to a terminal.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"deps.dev/util/markeralgebra"
	"deps.dev/util/markeralgebra/internal/markerparser"
)

const usage = "Usage: markercheck <marker> [<marker> ...]"

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	ids := make([]markeralgebra.NodeID, len(os.Args)-1)
	for i, raw := range os.Args[1:] {
		id, err := markerparser.Compile(raw)
		if err != nil {
			log.Fatalf("compiling %q: %v", raw, err)
		}
		ids[i] = id
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 2, 2, ' ', 0)
	fmt.Fprintf(w, "marker\tis_true\tis_false\n")
	for i, raw := range os.Args[1:] {
		fmt.Fprintf(w, "%s\t%v\t%v\n", raw, markeralgebra.IsTrue(ids[i]), markeralgebra.IsFalse(ids[i]))
	}
	w.Flush()

	if len(ids) < 2 {
		return
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 4, 2, 2, ' ', 0)
	fmt.Fprintf(w, "a\tb\tdisjoint\tand_is_false\tor_is_true\n")
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			and := markeralgebra.And(ids[i], ids[j])
			or := markeralgebra.Or(ids[i], ids[j])
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\n",
				os.Args[i+1], os.Args[j+1],
				markeralgebra.IsDisjoint(ids[i], ids[j]),
				markeralgebra.IsFalse(and),
				markeralgebra.IsTrue(or))
		}
	}
	w.Flush()
}
