package semiring_test

import (
	"fmt"

	"github.com/katalvlaran/semipath/semiring"
)

// ExampleNew demonstrates constructing a custom semiring — here the
// counting algebra over int — with sampled law checking enabled.
func ExampleNew() {
	// 1. Define ⊕ and ⊗ for walk counting.
	add := func(a, b int) int { return a + b }
	mul := func(a, b int) int { return a * b }

	// 2. Construct with a small probe set; New refutes broken laws early.
	s, err := semiring.New(add, mul, 0, 1, semiring.WithSamples(0, 1, 2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Use it like any predefined instance.
	fmt.Println(s.Add(2, 3), s.Mul(2, 3), s.Zero(), s.One())
	// Output: 5 6 0 1
}

// ExampleShortestPath shows the min-plus instance: ⊗ accumulates weight
// along a path, ⊕ keeps the better alternative.
func ExampleShortestPath() {
	sp := semiring.ShortestPath()

	viaB := sp.Mul(3, 1)        // A→B (3) then B→C (1)
	direct := 5.0               // A→C (5)
	best := sp.Add(viaB, direct)

	fmt.Println(viaB, best)
	// Output: 4 4
}
