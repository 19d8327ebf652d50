package descstats

import (
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/descstats/libs/serializer"
	"github.com/hyp3rd/descstats/sentinel"
)

// Summary holds the descriptive statistics of a collected sample at a point in
// time. StdDev carries the library's (n-1)-normalized, non-rooted spread and
// Median its lower-middle policy; see the package-level functions for the
// exact contracts. A summary over a single observation carries a NaN spread.
type Summary struct {
	Count  int     `json:"count"`  // number of observations summarized
	Mean   float64 `json:"mean"`   // arithmetic mean
	StdDev float64 `json:"stddev"` // sum of squared deviations over (n-1)
	Median float64 `json:"median"` // lower-middle element of the sorted sample
	L2     float64 `json:"l2"`     // Euclidean norm
}

// Collector accumulates float64 observations and summarizes them with the
// package statistics. It is safe for concurrent use.
type Collector struct {
	mu              sync.RWMutex // mutex to protect concurrent access to the sample
	sample          []float64    // recorded observations, in arrival order
	initialCapacity int
}

// NewCollector creates a new collector.
func NewCollector(options ...Option) (*Collector, error) {
	collector := &Collector{}
	for _, option := range options {
		option(collector)
	}

	if collector.initialCapacity < 0 {
		return nil, ewrap.Wrap(sentinel.ErrInvalidCapacity, "initialCapacity")
	}

	collector.sample = make([]float64, 0, collector.initialCapacity)

	return collector, nil
}

// Record appends observations to the collector's sample.
func (c *Collector) Record(values ...float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sample = append(c.sample, values...)
}

// Count returns the number of observations recorded so far.
func (c *Collector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.sample)
}

// Sample returns a copy of the recorded observations in arrival order.
func (c *Collector) Sample() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sample := make([]float64, len(c.sample))
	copy(sample, c.sample)

	return sample
}

// Reset discards all recorded observations, keeping the allocated buffer.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sample = c.sample[:0]
}

// Snapshot computes a Summary over the observations recorded so far.
// A collector with no observations has no summary and returns
// sentinel.ErrEmptySample, even though the mean and the L2 norm individually
// have empty-sample conventions.
func (c *Collector) Snapshot() (Summary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.sample) == 0 {
		return Summary{}, ewrap.Wrap(sentinel.ErrEmptySample, "snapshot")
	}

	mean, _ := Mean(c.sample)
	stddev, _ := StdDev(c.sample)
	median, _ := Median(c.sample)
	norm, _ := L2(c.sample)

	return Summary{
		Count:  len(c.sample),
		Mean:   mean,
		StdDev: stddev,
		Median: median,
		L2:     norm,
	}, nil
}

// Export encodes the current Summary with the given serializer, for callers
// shipping snapshots to logs, queues, or dashboards.
func (c *Collector) Export(ser serializer.ISerializer) ([]byte, error) {
	if ser == nil {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "serializer")
	}

	summary, err := c.Snapshot()
	if err != nil {
		return nil, err
	}

	data, err := ser.Marshal(summary)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to export summary")
	}

	return data, nil
}
