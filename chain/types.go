// Package chain defines core types and sentinel errors for the
// controller-chain cost engine of github.com/katalvlaran/padchain.
package chain

import (
	"errors"

	"github.com/katalvlaran/padchain/layout"
)

// Sentinel errors for chain operations.
var (
	// ErrNegativeDepth indicates New was called with depth < 0.
	ErrNegativeDepth = errors.New("chain: depth must be non-negative")
	// ErrGapCrossing indicates a movement path was routed over a gap
	// cell. The order policy prevents this by construction; seeing it
	// means a logic bug, not bad input.
	ErrGapCrossing = errors.New("chain: movement path crosses the keypad gap")
)

// orderSig is a move order over the four directional keys, horizontal
// moves fully before vertical or vice versa. It doubles as the cache
// key component identifying which order priced a cached move.
type orderSig [4]byte

// cacheKey identifies one memoized move of a level: the displacement,
// the inner level's cursor before the move, and the order used.
type cacheKey struct {
	delta layout.Coord
	inner layout.Coord
	order orderSig
}

// cacheVal holds the memoized outcome: total presses at the bottom of
// the chain and the inner cursor position after the move.
type cacheVal struct {
	presses uint64
	inner   layout.Coord
}

// level is one controller in the chain. The outermost level's cursor
// lives on the caller's keypad; inner cursors live on the directional
// remote. inner == nil marks the human-operated end of the chain.
// Each level exclusively owns the level beneath it.
type level struct {
	cursor layout.Coord
	inner  *level
	cache  map[cacheKey]cacheVal
}

// Chain is the public handle: the outermost level plus the number of
// directional controllers beneath it.
type Chain struct {
	top   *level
	depth int
}
