package chain_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/layout"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleChain
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Type the door code "029A" through two directional controllers.
//	Each door key costs a walk plus a press, all priced in physical
//	presses at the bottom of the chain.
//
// Complexity: O(depth) per key after cache warm-up.
func ExampleChain() {
	c, err := chain.New(layout.Numeric.Home(), 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var total uint64
	for _, key := range []byte("029A") {
		pos, err := layout.Numeric.PositionOf(key)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		total += c.MoveTo(pos, layout.Numeric.Gap())
		total += c.Press(1)
	}
	c.Reset(layout.Numeric.Home())

	fmt.Printf("presses=%d\n", total)
	// Output:
	// presses=68
}

// ExampleChain_depthZero shows the human-operated base case: cost is
// plain taxicab geometry.
func ExampleChain_depthZero() {
	c, err := chain.New(layout.Numeric.Home(), 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	target, _ := layout.Numeric.PositionOf('7')
	moves := c.MoveTo(target, layout.Numeric.Gap())
	press := c.Press(1)

	fmt.Printf("moves=%d press=%d\n", moves, press)
	// Output:
	// moves=5 press=1
}
