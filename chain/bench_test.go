package chain_test

import (
	"testing"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/layout"
)

// benchmarkTypeCode prices code once per iteration on a chain of the
// given depth, resetting between iterations so every run replays the
// same moves against warm caches.
func benchmarkTypeCode(b *testing.B, depth int, code string) {
	c, err := chain.New(layout.Numeric.Home(), depth)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	positions := make([]layout.Coord, len(code))
	for i := 0; i < len(code); i++ {
		pos, err := layout.Numeric.PositionOf(code[i])
		if err != nil {
			b.Fatalf("PositionOf failed: %v", err)
		}
		positions[i] = pos
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		for _, pos := range positions {
			_ = c.MoveTo(pos, layout.Numeric.Gap())
			_ = c.Press(1)
		}
		c.Reset(layout.Numeric.Home())
	}
}

// BenchmarkTypeCode_Depth2 benchmarks the short chain on one code.
func BenchmarkTypeCode_Depth2(b *testing.B) {
	benchmarkTypeCode(b, 2, "029A")
}

// BenchmarkTypeCode_Depth25 benchmarks the long chain on one code;
// after warm-up every press is a cache hit.
func BenchmarkTypeCode_Depth25(b *testing.B) {
	benchmarkTypeCode(b, 25, "029A")
}

// BenchmarkTypeCode_Depth25Cold rebuilds the chain every iteration to
// measure the cold, cache-filling pass.
func BenchmarkTypeCode_Depth25Cold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c, err := chain.New(layout.Numeric.Home(), 25)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		b.StartTimer()

		for j := 0; j < len("029A"); j++ {
			pos, err := layout.Numeric.PositionOf("029A"[j])
			if err != nil {
				b.Fatalf("PositionOf failed: %v", err)
			}
			_ = c.MoveTo(pos, layout.Numeric.Gap())
			_ = c.Press(1)
		}
	}
}
