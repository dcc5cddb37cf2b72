package service

import (
	"time"

	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/adapters/staffing"
	"github.com/okian/teamboard/internal/config"
	"github.com/okian/teamboard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig sets the configuration. Defaults come from config.New.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the roster store. Without it the roster is loaded from
// the configured dataset path.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithStaffing replaces the staffing client.
func WithStaffing(c *staffing.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.staffing = c
		}
	}
}

// WithArchiveRemote replaces the Notion client used by the archive pipeline.
func WithArchiveRemote(r ArchiveRemote) Option {
	return func(s *Service) {
		if r != nil {
			s.remote = r
		}
	}
}

// WithGraph sets the graph projector. Without it a projector is created on
// Start when neo4j_uri is configured.
func WithGraph(g GraphProjector) Option {
	return func(s *Service) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithClock sets the clock used for scoring and archive timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
