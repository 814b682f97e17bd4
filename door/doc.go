// Package door orchestrates the controller chain against the numeric
// door keypad: it turns a door code into a total physical press count
// and carries the puzzle's complexity scoring.
//
// What:
//
//   - Keypad owns the numeric layout plus a controller chain of a
//     chosen depth; TotalPresses prices one code and returns every
//     cursor to its home key afterwards.
//   - SequenceValue extracts the numeric value embedded in a code
//     (digits before the trailing 'A').
//   - Complexity and SumComplexities weight press counts by sequence
//     values, per code and across an input batch.
//
// Why:
//
//   - One Keypad is built per chain depth and reused across all input
//     lines; memo caches persist across lines while cursors reset, so
//     later lines are mostly cache hits.
//
// Errors:
//
//   - layout.ErrUnknownKey: a code contains a character that is not on
//     the numeric keypad; the diagnostic names the key and the code.
//   - ErrBadSequence: a code carries no parsable numeric value.
package door
