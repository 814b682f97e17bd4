package door_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/door"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleKeypad_TotalPresses
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Price the door code "029A" through the basic two-robot chain and
//	weight it by its embedded numeric value.
func ExampleKeypad_TotalPresses() {
	k, err := door.New(door.ShortChain)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	presses, err := k.TotalPresses("029A")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	value, _ := door.SequenceValue("029A")

	fmt.Printf("presses=%d value=%d complexity=%d\n", presses, value, presses*value)
	// Output:
	// presses=68 value=29 complexity=1972
}

// ExampleSumComplexities scores a whole batch of codes at once.
func ExampleSumComplexities() {
	codes := []string{"029A", "980A", "179A", "456A", "379A"}

	sum, err := door.SumComplexities(codes, door.ShortChain)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("sum=%d\n", sum)
	// Output:
	// sum=126384
}
