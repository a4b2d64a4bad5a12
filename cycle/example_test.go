package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/antmst/core"
	"github.com/katalvlaran/antmst/cycle"
)

// ExampleCausesCycle shows the triangle case: A-B and B-C already connect A
// to C, so A-C would close a cycle while C-D would not.
func ExampleCausesCycle() {
	tree := []*core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}
	fmt.Println(cycle.CausesCycle(tree, &core.Edge{From: "A", To: "C", Weight: 3}))
	fmt.Println(cycle.CausesCycle(tree, &core.Edge{From: "C", To: "D", Weight: 4}))
	// Output:
	// true
	// false
}
