package chain

import "github.com/katalvlaran/padchain/layout"

// New builds a chain whose outermost cursor rests at home and which has
// depth directional controllers between that cursor and the human.
// depth 0 means the outer keypad is operated directly: every MoveTo
// costs its Manhattan distance and every Press costs one per press.
// Depth < 0 returns ErrNegativeDepth.
func New(home layout.Coord, depth int) (*Chain, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}

	return &Chain{top: newLevel(home, depth), depth: depth}, nil
}

// Depth returns the number of directional controllers in the chain.
func (c *Chain) Depth() int {
	return c.depth
}

// Cursor returns the outermost level's current position.
func (c *Chain) Cursor() layout.Coord {
	return c.top.cursor
}

// MoveTo walks the outermost cursor to target on a layout whose gap is
// gap and returns the number of presses required at the bottom of the
// chain. Zero delta costs zero and has no side effect.
func (c *Chain) MoveTo(target, gap layout.Coord) uint64 {
	return c.top.moveTo(target, gap)
}

// Press activates the key under the outermost cursor n times and
// returns the bottom-of-chain press count.
func (c *Chain) Press(n int) uint64 {
	return c.top.press(n)
}

// Reset returns the outermost cursor to home and every inner cursor to
// the directional 'A' key. Idempotent; memo caches survive.
func (c *Chain) Reset(home layout.Coord) {
	c.top.reset(home)
}
