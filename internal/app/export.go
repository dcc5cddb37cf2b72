package service

import (
	"context"

	"github.com/okian/teamboard/internal/adapters/export"
)

// Export writes the roster CSV files into dir.
func (s *Service) Export(ctx context.Context, dir string) (export.Files, error) {
	return s.exporter.Export(ctx, dir, s.store.Snapshot(ctx))
}

// Summary counts the roster for the export report.
func (s *Service) Summary(ctx context.Context) export.Summary {
	return export.Summarize(s.store.Snapshot(ctx))
}
