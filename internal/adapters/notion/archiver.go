package notion

import (
	"context"
	"fmt"

	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

// Archive targets reported in metrics and results.
const (
	TargetNotion = "notion"
	TargetLocal  = "local"
)

// Pusher is the remote half of the archiver.
type Pusher interface {
	Enabled() bool
	PushProject(ctx context.Context, p types.ProjectRecord) types.PushResult
	PushTask(ctx context.Context, t types.TaskRecord) types.PushResult
}

// Archiver pushes a job to Notion and falls back to the local archive when
// Notion is not configured or rejects the page.
type Archiver struct {
	remote Pusher
	local  *LocalArchive
	logger logger.Logger
}

// NewArchiver wires the remote and local stores. local may be nil, in which
// case remote failures are final.
func NewArchiver(remote Pusher, local *LocalArchive) *Archiver {
	return &Archiver{remote: remote, local: local, logger: logger.Get().Named("archiver")}
}

// Archive stores one job and reports where it landed.
func (a *Archiver) Archive(ctx context.Context, job types.ArchiveJob) (types.PushResult, string) { //nolint:gocritic // hugeParam
	if job.Project == nil && job.Task == nil {
		return types.PushResult{Error: ErrInvalidJob.Error()}, ""
	}

	var res types.PushResult
	if a.remote != nil && a.remote.Enabled() {
		if job.Project != nil {
			res = a.remote.PushProject(ctx, *job.Project)
		} else {
			res = a.remote.PushTask(ctx, *job.Task)
		}
		metrics.RecordArchivePush(TargetNotion, res.Success)
		if res.Success {
			return res, TargetNotion
		}
		a.logger.Warn(ctx, "notion push failed, falling back to local archive",
			logger.String("key", job.Key),
			logger.String("error", res.Error),
		)
	}

	if a.local == nil {
		if res.Error == "" {
			res.Error = ErrNotConfigured.Error()
		}
		return res, TargetNotion
	}

	var record any = job.Project
	if job.Project == nil {
		record = job.Task
	}
	if err := a.local.Save(ctx, string(job.Kind), record); err != nil {
		metrics.RecordArchivePush(TargetLocal, false)
		return types.PushResult{Error: fmt.Sprintf("local archive: %v", err)}, TargetLocal
	}
	metrics.RecordArchivePush(TargetLocal, true)
	return types.PushResult{Success: true, ID: job.ID}, TargetLocal
}
