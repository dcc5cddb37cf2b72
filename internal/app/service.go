// Package service composes the roster, the scoring and salary engines, the
// archive pipeline and the external collaborators into the dependencies
// required by the HTTP API, the MCP server and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/teamboard/internal/adapters/export"
	"github.com/okian/teamboard/internal/adapters/graph"
	"github.com/okian/teamboard/internal/adapters/http/api"
	"github.com/okian/teamboard/internal/adapters/mcp"
	"github.com/okian/teamboard/internal/adapters/mq/queue"
	"github.com/okian/teamboard/internal/adapters/mq/worker"
	"github.com/okian/teamboard/internal/adapters/notion"
	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/adapters/staffing"
	"github.com/okian/teamboard/internal/config"
	"github.com/okian/teamboard/internal/domain/benchmark"
	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/dedupe"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/scoring"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

var (
	_ api.Dependencies = (*Service)(nil)
	_ mcp.Backend      = (*Service)(nil)
)

// ArchiveRemote is the Notion side of the archive pipeline.
type ArchiveRemote interface {
	notion.Pusher
	Check(ctx context.Context) types.ConnectionStatus
}

// GraphProjector mirrors the roster into a graph database.
type GraphProjector interface {
	Project(ctx context.Context, r model.Roster) error
	Close(ctx context.Context) error
}

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex

	cfg    *config.Config
	logger logger.Logger
	now    func() time.Time

	store      repository.Store
	engine     *scoring.Engine
	comparator *benchmark.Comparator
	exporter   *export.Exporter

	deduper  dedupe.Deduper
	queue    *queue.InMemoryQueue
	pool     *worker.Pool
	remote   ArchiveRemote
	local    *notion.LocalArchive
	archiver *notion.Archiver

	staffing *staffing.Client
	graph    GraphProjector

	started bool
}

// New builds every component without starting background work. The catalog
// is validated and the roster loaded here so that CLI commands can use the
// service without Start.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:    config.New(),
		logger: logger.Get().Named("service"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if s.store == nil {
		roster, err := repository.LoadRoster(s.cfg.DatasetPath)
		if err != nil {
			return nil, fmt.Errorf("load roster: %w", err)
		}
		s.store = repository.NewMemStore(repository.WithRoster(roster))
	}

	w := s.cfg.ScoreWeights
	s.engine = scoring.NewEngine(
		scoring.WithClock(s.now),
		scoring.WithWeights(scoring.Weights{Project: w.Project, Task: w.Task, Skill: w.Skill}),
	)
	s.comparator = benchmark.NewComparator()
	s.exporter = export.New(export.WithClock(s.now))

	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.cfg.DedupeSize))
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.cfg.QueueSize))
	if s.remote == nil {
		s.remote = notion.NewClient(s.cfg.NotionAPIKey, s.cfg.NotionDatabaseID, notion.WithBaseURL(s.cfg.NotionBaseURL))
	}
	if s.cfg.LocalArchivePath != "" {
		s.local = notion.NewLocalArchive(s.cfg.LocalArchivePath)
	}
	s.archiver = notion.NewArchiver(s.remote, s.local)
	s.pool = worker.NewPool(s.cfg.WorkerCount, s.queue, worker.HandlerFunc(s.handleArchiveJob))

	if s.staffing == nil {
		s.staffing = staffing.NewClient(s.cfg.AnthropicAPIKey, s.cfg.AnthropicModel)
	}
	return s, nil
}

// Config returns the effective configuration.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Start runs the archive workers and, when configured, connects the graph
// projection. A graph that cannot be reached is logged and skipped.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.logger.Info(ctx, "starting teamboard service...")

	if s.graph == nil && s.cfg.Neo4jURI != "" {
		g, err := graph.New(ctx, graph.Config{
			URI:      s.cfg.Neo4jURI,
			User:     s.cfg.Neo4jUser,
			Password: s.cfg.Neo4jPassword,
			Database: s.cfg.Neo4jDatabase,
		})
		switch {
		case err == nil:
			s.graph = g
		case errors.Is(err, graph.ErrDisabled):
		default:
			metrics.RecordError("graph", "connect", "warning")
			s.logger.Warn(ctx, "graph projection unavailable", logger.Error(err))
		}
	}

	s.pool.Start(ctx)
	s.started = true
	s.syncGraph(ctx)

	s.logger.Info(ctx, "teamboard service started",
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queue.Capacity()),
		logger.Int("dedupeSize", s.cfg.DedupeSize),
		logger.Bool("notion", s.remote.Enabled()),
		logger.Bool("graph", s.graph != nil),
	)
	return nil
}

// Stop drains the archive queue within ctx and releases the graph driver.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.logger.Info(ctx, "stopping teamboard service...")

	var errs []error
	if err := s.pool.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.graph != nil {
		if err := s.graph.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close graph: %w", err))
		}
	}
	s.started = false
	s.logger.Info(ctx, "teamboard service stopped")
	return errors.Join(errs...)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	employees := s.store.Employees(ctx)
	overloaded := 0
	for i := range employees {
		if employees[i].Risk == model.RiskCritical {
			overloaded++
		}
	}
	queueLen := s.queue.Len(ctx)
	metrics.UpdateQueue(queueLen, s.queue.Capacity())

	return map[string]any{
		"started":          s.started,
		"employees":        len(employees),
		"projects":         len(s.store.Projects(ctx)),
		"overloaded":       overloaded,
		"workerCount":      s.pool.Size(),
		"activeWorkers":    s.pool.Active(),
		"queueLength":      queueLen,
		"queueCapacity":    s.queue.Capacity(),
		"dedupeSize":       s.deduper.Size(),
		"notionEnabled":    s.remote.Enabled(),
		"graphEnabled":     s.graph != nil,
		"evaluationPeriod": s.cfg.EvaluationPeriod,
	}
}
