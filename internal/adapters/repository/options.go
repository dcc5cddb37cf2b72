package repository

import "github.com/okian/teamboard/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithRoster seeds the store. The roster is copied.
func WithRoster(r model.Roster) Option {
	return func(s *MemStore) {
		s.seed = r
	}
}
