// Package door defines constants and sentinel errors for door-keypad
// orchestration in github.com/katalvlaran/padchain.
package door

import (
	"errors"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/layout"
)

// The two deployed chain lengths.
const (
	// ShortChain is the two-robot chain of the basic door.
	ShortChain = 2
	// LongChain is the twenty-five-robot chain of the hardened door.
	LongChain = 25
)

// Sentinel errors for door operations.
var (
	// ErrBadSequence indicates a code carries no parsable numeric value.
	ErrBadSequence = errors.New("door: sequence has no numeric value")
)

// Keypad wraps the numeric door layout and an owned controller chain.
// Build one per chain depth and reuse it across input lines; it is not
// safe for concurrent use.
type Keypad struct {
	pad   *layout.Layout
	chain *chain.Chain
}
