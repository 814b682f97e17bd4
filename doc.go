// Package padchain computes the minimum number of physical keypresses
// needed at the bottom of a chain of indirect keypad controllers to
// type a code on a door keypad at the top.
//
// 🚀 What is padchain?
//
//	A small, focused library for the nested-keypad cost problem:
//		• layout — static geometry of the numeric and directional keypads
//		• chain  — the recursive, memoized controller-chain cost engine
//		• door   — door-keypad orchestration, per-code totals and scoring
//
// The model: a numeric door keypad is operated by a robot whose
// directional remote is operated by another robot, and so on, N levels
// deep, until a human presses real buttons. Every arrow pressed at one
// level costs a whole move-and-press excursion at the level beneath it,
// so naive cost grows exponentially with depth; per-level memoization
// keyed on (movement delta, inner cursor, move order) collapses it to
// a handful of recurring states even at depth 25.
//
// ✨ Why choose padchain?
//
//   - Exact – provably minimal press counts, not heuristics
//   - Deterministic – pure in-memory computation, no I/O, no globals
//   - Tiny API – three packages, a dozen exported names
//
// Quick ASCII sketch of the chain for one door key:
//
//	door "029A" ← robot₀ (directional) ← robot₁ (directional) ← human
//
// Dive into examples/ for runnable demos and cmd/padlock-web for an
// interactive visualization.
//
//	go get github.com/katalvlaran/padchain
package padchain
