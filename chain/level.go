package chain

import "github.com/katalvlaran/padchain/layout"

// newLevel builds a level resting at home with depth controllers
// beneath it, each resting on the directional home key.
func newLevel(home layout.Coord, depth int) *level {
	l := &level{cursor: home, cache: make(map[cacheKey]cacheVal)}
	if depth > 0 {
		l.inner = newLevel(dirHome, depth-1)
	}

	return l
}

// moveTo walks this level's cursor to target on a layout whose gap is
// gap, and returns the press count required at the bottom of the chain.
// The cursor lands on target as an observable side effect; so does the
// inner cursor, whose final position depends on the move order taken.
func (l *level) moveTo(target, gap layout.Coord) uint64 {
	delta := target.Sub(l.cursor)
	if delta.IsZero() {
		return 0
	}

	// Human-operated end: presses are physical, cost is pure geometry.
	if l.inner == nil {
		l.cursor = target

		return uint64(delta.Manhattan())
	}

	order := pressOrder(l.cursor, target, gap)
	key := cacheKey{delta: delta, inner: l.inner.cursor, order: order}
	if hit, ok := l.cache[key]; ok {
		l.cursor = target
		l.inner.cursor = hit.inner

		return hit.presses
	}

	var presses uint64
	for _, dir := range order {
		n := pressesInDirection(delta, dir)
		if n == 0 {
			// Nothing to emit along this axis; no recursive work,
			// inner cursor stays put.
			continue
		}
		presses += l.inner.moveTo(dirPos[dir], dirGap)
		presses += l.inner.press(n)
	}

	l.cache[key] = cacheVal{presses: presses, inner: l.inner.cursor}
	l.cursor = target

	return presses
}

// press activates the key under this level's cursor n times. One level
// down that means walking to 'A' and pressing it n times; at the
// human-operated end the n presses are counted directly.
func (l *level) press(n int) uint64 {
	if l.inner == nil {
		return uint64(n)
	}

	return l.inner.moveTo(dirHome, dirGap) + l.inner.press(n)
}

// reset returns this level's cursor to home and every inner level to
// the directional home key. Caches are kept: their keys carry the inner
// cursor position, so entries stay valid across resets.
func (l *level) reset(home layout.Coord) {
	l.cursor = home
	if l.inner != nil {
		l.inner.reset(dirHome)
	}
}
