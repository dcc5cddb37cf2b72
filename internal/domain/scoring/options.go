package scoring

import "time"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithClock sets the time source used for the on-time check.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithWeights overrides the sub-score weights. Weights that are negative or
// do not sum to 1 are ignored.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if w.Valid() {
			e.weights = w
		}
	}
}
