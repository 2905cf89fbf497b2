package world

import (
	"context"
	"testing"
)

func BenchmarkPopulateChunk(b *testing.B) {
	p, err := StandardGenerator(1)
	if err != nil {
		b.Fatal(err)
	}
	c := NewChunk(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.PopulateChunk(c)
	}
}

// Benchmark a parallel 8x8 chunk region fill
func BenchmarkPopulateRegion(b *testing.B) {
	p, err := StandardGenerator(1)
	if err != nil {
		b.Fatal(err)
	}
	pool := NewFillPool(4, 64)
	defer pool.Shutdown()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.PopulateRegion(context.Background(), p, NewChunkStore(), 0, 0, 7, 7); err != nil {
			b.Fatal(err)
		}
	}
}
