// Package chain implements the recursive, memoized cost engine for a
// chain of indirect keypad controllers.
//
// What:
//
//   - A Chain is a linked sequence of controller levels. The outermost
//     level's cursor lives on the caller's keypad (the door pad); every
//     inner level's cursor lives on its own directional remote; the
//     innermost level is human-operated and counts presses directly.
//   - MoveTo walks the outermost cursor to a target coordinate and
//     returns the number of physical presses the bottom of the chain
//     must perform to make that happen.
//   - Press activates the key under the outermost cursor n times, again
//     priced in bottom-of-chain presses.
//
// Why:
//
//   - Each arrow pressed at one level costs a whole move-and-press
//     excursion at the level beneath it, so the naive recursion is
//     exponential in depth. A per-level cache keyed on (movement delta,
//     inner cursor, move order) collapses the state space to the few
//     combinations that actually recur, keeping depth-25 chains cheap.
//   - Move order matters twice: it changes the cost of the level below,
//     and a wrong order can sweep the cursor across the layout's gap
//     cell. The order policy is a static three-entry table keyed on
//     axis alignment with the gap; it avoids the gap by construction.
//
// Complexity:
//
//   - MoveTo/Press: O(depth) amortized after cache warm-up,
//     O(depth × 4) cold per level. Memory: O(distinct cache keys) per
//     level, a small constant in practice.
//
// Errors:
//
//   - ErrNegativeDepth: New was asked for a chain of negative depth.
//   - ErrGapCrossing: assertion surface for a path routed over a gap
//     cell; never produced by the shipped order policy.
//
// Not safe for concurrent mutation of one Chain; independent Chains
// share no state.
package chain
