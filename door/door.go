package door

import (
	"fmt"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/layout"
)

// New builds a Keypad whose chain has depth directional controllers.
// Depth < 0 returns chain.ErrNegativeDepth.
func New(depth int) (*Keypad, error) {
	c, err := chain.New(layout.Numeric.Home(), depth)
	if err != nil {
		return nil, err
	}

	return &Keypad{pad: &layout.Numeric, chain: c}, nil
}

// Depth returns the number of directional controllers in the chain.
func (k *Keypad) Depth() int {
	return k.chain.Depth()
}

// TotalPresses prices one door code: for each character in order, walk
// the chain's outermost cursor to that key on the numeric pad and
// press it once. Every cursor returns to its home key afterwards,
// success or failure; memo caches persist across codes.
//
// A character that is not on the numeric pad aborts the code with
// layout.ErrUnknownKey; the diagnostic names the key and the code.
func (k *Keypad) TotalPresses(sequence string) (uint64, error) {
	defer k.Reset()

	var presses uint64
	for i := 0; i < len(sequence); i++ {
		pos, err := k.pad.PositionOf(sequence[i])
		if err != nil {
			return 0, fmt.Errorf("door: sequence %q: %w", sequence, err)
		}
		presses += k.chain.MoveTo(pos, k.pad.Gap())
		presses += k.chain.Press(1)
	}

	return presses, nil
}

// Complexity returns TotalPresses(sequence) × SequenceValue(sequence),
// the code's score contribution.
func (k *Keypad) Complexity(sequence string) (uint64, error) {
	presses, err := k.TotalPresses(sequence)
	if err != nil {
		return 0, err
	}
	value, err := SequenceValue(sequence)
	if err != nil {
		return 0, err
	}

	return presses * value, nil
}

// Chain exposes the owned controller chain for callers that need
// per-key pricing instead of whole-sequence totals.
func (k *Keypad) Chain() *chain.Chain {
	return k.chain
}

// Reset returns every cursor in the chain to its home key. Idempotent.
func (k *Keypad) Reset() {
	k.chain.Reset(k.pad.Home())
}

// SumComplexities builds one Keypad of the given depth and sums the
// complexity of every code, stopping at the first bad one.
func SumComplexities(sequences []string, depth int) (uint64, error) {
	k, err := New(depth)
	if err != nil {
		return 0, err
	}

	var sum uint64
	for _, seq := range sequences {
		c, err := k.Complexity(seq)
		if err != nil {
			return 0, err
		}
		sum += c
	}

	return sum, nil
}
