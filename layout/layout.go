package layout

import "fmt"

// Home is the activate key present on both keypads; every cursor rests
// on it between sequences.
const Home byte = 'A'

// Numeric is the 4×3 door keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0 A
//
// The gap is the empty bottom-left cell, (3, 0).
var Numeric = Layout{
	name: "numeric",
	keys: map[byte]Coord{
		'7': {0, 0}, '8': {0, 1}, '9': {0, 2},
		'4': {1, 0}, '5': {1, 1}, '6': {1, 2},
		'1': {2, 0}, '2': {2, 1}, '3': {2, 2},
		'0': {3, 1}, 'A': {3, 2},
	},
	gap: Coord{3, 0},
}

// Directional is the 2×3 remote keypad:
//
//	  ^ A
//	< v >
//
// The gap is the empty top-left cell, (0, 0).
var Directional = Layout{
	name: "directional",
	keys: map[byte]Coord{
		'^': {0, 1}, 'A': {0, 2},
		'<': {1, 0}, 'v': {1, 1}, '>': {1, 2},
	},
	gap: Coord{0, 0},
}

// Name returns the layout's human-readable name ("numeric" or "directional").
func (l *Layout) Name() string {
	return l.name
}

// PositionOf returns the coordinate of key on this layout.
// Unknown symbols return ErrUnknownKey wrapped with the offending key.
func (l *Layout) PositionOf(key byte) (Coord, error) {
	pos, ok := l.keys[key]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q (%s keypad)", ErrUnknownKey, key, l.name)
	}

	return pos, nil
}

// Contains reports whether key exists on this layout.
func (l *Layout) Contains(key byte) bool {
	_, ok := l.keys[key]

	return ok
}

// Gap returns the layout's forbidden cell. A cursor must never rest on
// it, and the chain's move-order policy never routes through it.
func (l *Layout) Gap() Coord {
	return l.gap
}

// Home returns the coordinate of the 'A' key, the rest position of
// every cursor between sequences.
func (l *Layout) Home() Coord {
	return l.keys[Home]
}

// Keys returns the symbols present on this layout. The order is not
// specified; callers needing determinism must sort.
func (l *Layout) Keys() []byte {
	out := make([]byte, 0, len(l.keys))
	for k := range l.keys {
		out = append(out, k)
	}

	return out
}
