package stats

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	timestamp time.Time
	duration  time.Duration
	found     bool
}

// Snapshot is a point-in-time aggregate of locate calls in the window.
type Snapshot struct {
	Count  int     `json:"count"`
	Found  int     `json:"found"`
	Missed int     `json:"missed"`
	MinUs  int64   `json:"min_us"`
	MaxUs  int64   `json:"max_us"`
	AvgUs  float64 `json:"avg_us"`
	P50Us  float64 `json:"p50_us"`
	P95Us  float64 `json:"p95_us"`
	P99Us  float64 `json:"p99_us"`
}

// Latency tracks recent locate calls within a rolling window.
type Latency struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

// NewLatency returns a tracker keeping samples for maxAge, defaulting to an
// hour.
func NewLatency(maxAge time.Duration) *Latency {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Latency{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one call's duration and whether it located a range.
func (s *Latency) Record(d time.Duration, found bool) {
	if d < 0 {
		d = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{timestamp: now, duration: d, found: found})
}

// Snapshot aggregates the calls still inside the window. It is zero when
// there are none.
func (s *Latency) Snapshot() Snapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return Snapshot{}
	}

	var snap Snapshot
	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		us := sm.duration.Microseconds()
		values = append(values, us)
		sum += us
		if sm.found {
			snap.Found++
		} else {
			snap.Missed++
		}
	}
	slices.Sort(values)

	snap.Count = len(values)
	snap.MinUs = values[0]
	snap.MaxUs = values[len(values)-1]
	snap.AvgUs = float64(sum) / float64(len(values))
	snap.P50Us = percentile(values, 50)
	snap.P95Us = percentile(values, 95)
	snap.P99Us = percentile(values, 99)
	return snap
}

// pruneLocked drops samples older than maxAge. s.mu must be held.
func (s *Latency) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	s.samples = slices.DeleteFunc(s.samples, func(sm sample) bool {
		return sm.timestamp.Before(cutoff)
	})
}

// percentile interpolates linearly between the two ranks nearest pct.
// sortedValues must be in ascending order.
func percentile(sortedValues []int64, pct float64) float64 {
	n := len(sortedValues)
	switch {
	case n == 0:
		return 0
	case pct <= 0:
		return float64(sortedValues[0])
	case pct >= 100:
		return float64(sortedValues[n-1])
	}

	rank := float64(n-1) * pct / 100
	below := int(rank)
	if below == n-1 {
		return float64(sortedValues[below])
	}
	frac := rank - float64(below)
	a, b := float64(sortedValues[below]), float64(sortedValues[below+1])
	return a + (b-a)*frac
}
