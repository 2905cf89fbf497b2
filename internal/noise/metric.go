package noise

import (
	"fmt"
	"math"
	"sort"
)

// DistanceFunc compares a candidate feature point against the query through
// the per-axis offsets dx and dz. It is only used as an ordering key: smaller
// wins. It does not need to be a true metric.
type DistanceFunc func(dx, dz float64) float64

// Sum adds the raw offsets. The legacy populator uses it. It is
// not a distance, and it favours points toward the low corner of the window.
func Sum(dx, dz float64) float64 {
	return dx + dz
}

func Euclidean(dx, dz float64) float64 {
	return math.Sqrt(SquaredEuclidean(dx, dz))
}

func SquaredEuclidean(dx, dz float64) float64 {
	x := float64(dx * dx)
	z := float64(dz * dz)
	return x + z
}

func Manhattan(dx, dz float64) float64 {
	return math.Abs(dx) + math.Abs(dz)
}

func Chebyshev(dx, dz float64) float64 {
	return math.Max(math.Abs(dx), math.Abs(dz))
}

var metrics = map[string]DistanceFunc{
	"sum":       Sum,
	"euclidean": Euclidean,
	"squared":   SquaredEuclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
}

// MetricByName resolves a built-in metric by its configuration name.
func MetricByName(name string) (DistanceFunc, error) {
	fn, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q (known: %v)", ErrConfiguration, name, MetricNames())
	}
	return fn, nil
}

// MetricNames lists the built-in metric names in sorted order.
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
