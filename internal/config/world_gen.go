package config

import (
	"sync"

	"metropolis/internal/noise"
)

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu         sync.RWMutex
	seed       int64
	frequency  float64
	metric     string
	offsetMode noise.OffsetMode
}

// WorldGen is an immutable copy of the world generation settings.
type WorldGen struct {
	Seed       int64
	Frequency  float64
	Metric     string
	OffsetMode noise.OffsetMode
}

var globalWorldGenSettings = &WorldGenSettings{
	seed:       0,
	frequency:  0.1,   // 10-block cells
	metric:     "sum", // what existing worlds were generated with
	offsetMode: noise.OffsetsLegacy,
}

// GetSeed returns the world seed
func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetSeed sets the world seed
func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}

// GetFrequency returns the configured cell frequency
func GetFrequency() float64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.frequency
}

// SetFrequency sets the cell frequency. Validation happens when a generator is built.
func SetFrequency(frequency float64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.frequency = frequency
}

// GetMetric returns the configured distance metric name
func GetMetric() string {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.metric
}

// SetMetric sets the distance metric name
func SetMetric(name string) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.metric = name
}

// GetOffsetMode returns the feature point offset derivation
func GetOffsetMode() noise.OffsetMode {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.offsetMode
}

// SetOffsetMode sets the feature point offset derivation
func SetOffsetMode(mode noise.OffsetMode) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.offsetMode = mode
}

// Snapshot returns a consistent copy of all world generation settings.
func Snapshot() WorldGen {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return WorldGen{
		Seed:       globalWorldGenSettings.seed,
		Frequency:  globalWorldGenSettings.frequency,
		Metric:     globalWorldGenSettings.metric,
		OffsetMode: globalWorldGenSettings.offsetMode,
	}
}

// NewGenerator builds a noise generator from the settings.
func (w WorldGen) NewGenerator() (*noise.Generator, error) {
	metric, err := noise.MetricByName(w.Metric)
	if err != nil {
		return nil, err
	}
	return noise.New(w.Seed, w.Frequency, metric, noise.WithOffsetMode(w.OffsetMode))
}

// NewGenerator builds a noise generator from the current global settings.
func NewGenerator() (*noise.Generator, error) {
	return Snapshot().NewGenerator()
}
