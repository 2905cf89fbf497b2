package config

import (
	"errors"
	"testing"

	"metropolis/internal/noise"
)

func TestDefaultWorldGenBuildsLegacyGenerator(t *testing.T) {
	w := WorldGen{Seed: 1, Frequency: 0.1, Metric: "sum", OffsetMode: noise.OffsetsLegacy}
	g, err := w.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	// first golden fixture of the legacy populator
	if s := g.Sample(0, 0); s.Field != -0.7758284518495202 {
		t.Errorf("Sample(0, 0).Field = %v", s.Field)
	}
}

func TestWorldGenRejectsBadSettings(t *testing.T) {
	tests := []WorldGen{
		{Frequency: 0, Metric: "sum"},
		{Frequency: 0.1, Metric: "nope"},
	}
	for _, w := range tests {
		if _, err := w.NewGenerator(); !errors.Is(err, noise.ErrConfiguration) {
			t.Errorf("NewGenerator(%+v) error = %v, want ErrConfiguration", w, err)
		}
	}
}

func TestWorldGenSettersRoundTrip(t *testing.T) {
	prev := Snapshot()
	defer func() {
		SetSeed(prev.Seed)
		SetFrequency(prev.Frequency)
		SetMetric(prev.Metric)
		SetOffsetMode(prev.OffsetMode)
	}()

	SetSeed(77)
	SetFrequency(0.02)
	SetMetric("euclidean")
	SetOffsetMode(noise.OffsetsPure)

	got := Snapshot()
	want := WorldGen{Seed: 77, Frequency: 0.02, Metric: "euclidean", OffsetMode: noise.OffsetsPure}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
	if GetSeed() != 77 || GetFrequency() != 0.02 || GetMetric() != "euclidean" || GetOffsetMode() != noise.OffsetsPure {
		t.Error("getters disagree with Snapshot")
	}
	g, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}
	if g.Seed() != 77 || g.Frequency() != 0.02 || g.OffsetMode() != noise.OffsetsPure {
		t.Errorf("generator built from globals has seed=%d freq=%v mode=%v", g.Seed(), g.Frequency(), g.OffsetMode())
	}
}

func TestPreviewSettingsClamp(t *testing.T) {
	prevSize, prevZoom := GetPreviewSize(), GetPreviewZoom()
	defer func() {
		SetPreviewSize(prevSize)
		SetPreviewZoom(prevZoom)
	}()

	SetPreviewSize(10)
	if GetPreviewSize() != 64 {
		t.Errorf("size clamp low = %d", GetPreviewSize())
	}
	SetPreviewSize(1 << 20)
	if GetPreviewSize() != 4096 {
		t.Errorf("size clamp high = %d", GetPreviewSize())
	}
	SetPreviewZoom(0)
	if GetPreviewZoom() != 1 {
		t.Errorf("zoom clamp low = %d", GetPreviewZoom())
	}
	SetPreviewZoom(1000)
	if GetPreviewZoom() != 64 {
		t.Errorf("zoom clamp high = %d", GetPreviewZoom())
	}
}
