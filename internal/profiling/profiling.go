package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight CPU profiler for generation passes: accumulates wall time and
// call counts per operation name.

// Stat is the accumulated cost of one operation.
type Stat struct {
	Total time.Duration
	Calls int
}

// Mean returns the average duration per call.
func (s Stat) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

var (
	mu     sync.Mutex
	totals = make(map[string]Stat)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.PopulateChunk")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := totals[name]
		s.Total += d
		s.Calls++
		totals[name] = s
		mu.Unlock()
	}
}

// Reset clears all recorded totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of current totals.
func Snapshot() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stat, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the n most expensive operations by total time.
// Example: "world.PopulateChunk:42.1ms/64, render.Raster:8.3ms/1"
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]].Total != ss[names[j]].Total {
			return ss[names[i]].Total > ss[names[j]].Total
		}
		return names[i] < names[j]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		s := ss[name]
		ms := float64(s.Total.Microseconds()) / 1000.0
		parts = append(parts, name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms/"+strconv.Itoa(s.Calls))
	}
	return strings.Join(parts, ", ")
}
