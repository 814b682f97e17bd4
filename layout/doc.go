// Package layout defines the static geometry of the two keypad kinds
// used by the controller chain: the numeric door keypad and the
// directional remote keypad.
//
// What:
//
//   - Coord is an integer (Row, Col) position on a small fixed grid.
//   - Layout maps each key symbol to its Coord and designates the one
//     forbidden "gap" cell that a cursor must never rest on or cross.
//   - Two process-wide instances exist: Numeric (digits 0–9 plus 'A',
//     4×3 grid, gap below '7') and Directional ('^','v','<','>','A',
//     2×3 grid, gap above '<').
//
// Why:
//
//   - The chain's cost model is pure geometry: every move is a
//     Manhattan walk between key coordinates, constrained only by the
//     layout's gap cell.
//   - Keeping layouts as read-only values makes every consumer
//     trivially safe for concurrent reads.
//
// Complexity:
//
//   - PositionOf: O(1) map lookup, Memory: O(k) per layout (k ≤ 11).
//
// Errors:
//
//   - ErrUnknownKey: the requested symbol is not on this layout.
package layout
