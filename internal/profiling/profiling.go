// Package profiling is a lightweight named-timer registry for pipeline stages.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stat aggregates every recorded span for one name.
type Stat struct {
	Total time.Duration
	Count int
}

// Mean returns the average span length.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	totals = make(map[string]Stat)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Record(name, time.Since(start))
	}
}

// Record adds d to the totals for name.
func Record(name string, d time.Duration) {
	mu.Lock()
	s := totals[name]
	s.Total += d
	s.Count++
	totals[name] = s
	mu.Unlock()
}

// Reset clears all totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stat, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix returns the total time of every name starting with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v.Total
		}
	}
	return sum
}

// TopN formats the n largest totals.
// Example: "manager.mesh:4.2ms x1, manager.generate:2.1ms x1"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		stat Stat
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, stat: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].stat.Total == list[j].stat.Total {
			return list[i].name < list[j].name
		}
		return list[i].stat.Total > list[j].stat.Total
	})
	n = max(min(n, len(list)), 0)
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		ms := float64(p.stat.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms x%d", p.name, ms, p.stat.Count))
	}
	return strings.Join(parts, ", ")
}
