// Package layout defines core types and sentinel errors for keypad
// geometry in github.com/katalvlaran/padchain.
package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout operations.
var (
	// ErrUnknownKey indicates a requested symbol is not part of the layout.
	ErrUnknownKey = errors.New("layout: key is not on this keypad")
)

// Coord is an integer (Row, Col) position on a keypad grid.
// Row grows downward, Col grows rightward. Immutable once defined per key.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns the component-wise difference c − o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// IsZero reports whether both components are zero.
func (c Coord) IsZero() bool {
	return c.Row == 0 && c.Col == 0
}

// Manhattan returns |Row| + |Col|, the taxicab length of c read as a delta.
func (c Coord) Manhattan() int {
	r, l := c.Row, c.Col
	if r < 0 {
		r = -r
	}
	if l < 0 {
		l = -l
	}

	return r + l
}

// String renders the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Layout is a fixed mapping from key symbol to Coord plus the single
// forbidden gap cell. Layouts are read-only after construction and safe
// for concurrent use.
type Layout struct {
	name string
	keys map[byte]Coord
	gap  Coord
}
