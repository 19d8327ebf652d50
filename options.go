package descstats

// Option is a function type that can be used to configure the `Collector` struct.
type Option func(*Collector)

// WithInitialCapacity is an option that pre-allocates the collector's sample
// buffer for the expected number of observations. A negative capacity is
// rejected by NewCollector.
func WithInitialCapacity(capacity int) Option {
	return func(collector *Collector) {
		collector.initialCapacity = capacity
	}
}
