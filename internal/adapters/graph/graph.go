// Package graph projects the staffing roster into Neo4j:
// (:Employee)-[:ALLOCATED {percent}]->(:Project),
// (:Employee)-[:HAS_SKILL]->(:Skill) and (:Task)-[:REQUIRES]->(:Skill).
package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

// ErrDisabled is returned when no Neo4j URI is configured.
var ErrDisabled = errors.New("graph projection disabled")

// Config holds connection settings.
type Config struct {
	URI      string
	User     string
	Password string
	Database string
}

// Projector writes roster snapshots into Neo4j.
type Projector struct {
	driver   neo4j.DriverWithContext
	database string
	logger   logger.Logger
}

// New connects to Neo4j and verifies connectivity. An empty URI yields
// ErrDisabled.
func New(ctx context.Context, cfg Config) (*Projector, error) {
	if cfg.URI == "" {
		return nil, ErrDisabled
	}
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	return &Projector{driver: driver, database: cfg.Database, logger: logger.Get().Named("graph")}, nil
}

// Project writes the roster in a single write transaction.
func (p *Projector) Project(ctx context.Context, r model.Roster) error {
	start := time.Now()
	stmts := BuildStatements(r)

	session := p.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: p.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer func() { _ = session.Close(ctx) }()

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, s := range stmts {
			if _, err := tx.Run(ctx, s.Cypher, s.Params); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		metrics.RecordError("graph", "projection_failed", "high")
		return fmt.Errorf("project roster: %w", err)
	}
	p.logger.Info(ctx, "roster projected",
		logger.Int("employees", len(r.Employees)),
		logger.Int("projects", len(r.Projects)),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}

// Close releases the driver.
func (p *Projector) Close(ctx context.Context) error {
	return p.driver.Close(ctx)
}
