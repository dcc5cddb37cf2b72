package dedupe

// Option applies a configuration option to the deduper.
type Option func(*seenSet)

// WithMaxSize bounds the number of remembered keys. A value <= 0 disables
// eviction.
func WithMaxSize(maxSize int) Option {
	return func(d *seenSet) {
		d.maxSize = maxSize
	}
}
