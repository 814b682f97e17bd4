package chain

import "github.com/katalvlaran/padchain/layout"

// Directional key symbols, named once so the order tables read cleanly.
const (
	keyUp    byte = '^'
	keyDown  byte = 'v'
	keyLeft  byte = '<'
	keyRight byte = '>'
)

// Coordinates of the directional keys, fixed for the life of the
// process. The remote's own gap sits at (0, 0).
var (
	dirGap  = layout.Directional.Gap()
	dirHome = layout.Directional.Home()
	dirPos  = map[byte]layout.Coord{
		keyUp:    {Row: 0, Col: 1},
		keyDown:  {Row: 1, Col: 1},
		keyLeft:  {Row: 1, Col: 0},
		keyRight: {Row: 1, Col: 2},
	}
)

// pressOrder picks the order in which directional keys are emitted for
// the move from → to on a layout whose gap is gap. One axis is always
// exhausted before the other; the choice between the three static
// orders exists solely to keep the cursor off the gap cell:
//
//   - cursor on the gap's row, target on the gap's column: going
//     horizontal first would sweep straight over the gap, so vertical
//     moves come first;
//   - cursor on the gap's column, target on the gap's row: the mirror
//     case, horizontal moves come first;
//   - otherwise the default "< v ^ >".
func pressOrder(from, to, gap layout.Coord) orderSig {
	if from.Row == gap.Row && to.Col == gap.Col {
		return orderSig{keyDown, keyUp, keyLeft, keyRight}
	}
	if from.Col == gap.Col && to.Row == gap.Row {
		return orderSig{keyLeft, keyRight, keyDown, keyUp}
	}

	return orderSig{keyLeft, keyDown, keyUp, keyRight}
}

// pressesInDirection returns how many times dir must be pressed to
// realize delta's component along that axis; zero when delta points the
// other way. Directions outside the four arrow keys are a programming
// error.
func pressesInDirection(delta layout.Coord, dir byte) int {
	switch dir {
	case keyLeft:
		if delta.Col < 0 {
			return -delta.Col
		}
	case keyRight:
		if delta.Col > 0 {
			return delta.Col
		}
	case keyDown:
		if delta.Row > 0 {
			return delta.Row
		}
	case keyUp:
		if delta.Row < 0 {
			return -delta.Row
		}
	default:
		panic("chain: direction is not one of '<', '>', '^', 'v'")
	}

	return 0
}
