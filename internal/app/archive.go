package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/teamboard/internal/adapters/notion"
	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/dedupe"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

// maxArchivedSkills caps the skills sent with a task page.
const maxArchivedSkills = 10

// ErrArchiveFailed is returned by ArchiveNow when at least one record could
// not be stored anywhere.
var ErrArchiveFailed = errors.New("archive failed")

// ArchiveOutcome reports where one archived record landed.
type ArchiveOutcome struct {
	Key    string           `json:"key"`
	Target string           `json:"target"`
	Result types.PushResult `json:"result"`
}

// SeenAndRecord marks an archive key as seen and reports whether it already was.
func (s *Service) SeenAndRecord(ctx context.Context, key string) bool {
	seen := s.deduper.SeenAndRecord(ctx, key)
	if seen {
		metrics.RecordArchiveDuplicate()
	}
	return seen
}

// Unrecord forgets an archive key so that it can be retried.
func (s *Service) Unrecord(ctx context.Context, key string) {
	s.deduper.Unrecord(ctx, key)
}

// Size returns the number of remembered archive keys.
func (s *Service) Size() int64 {
	return s.deduper.Size()
}

// Enqueue hands a job to the archive workers. It returns false when the
// queue is full or closed.
func (s *Service) Enqueue(ctx context.Context, job types.ArchiveJob) bool {
	return s.queue.Enqueue(ctx, job)
}

// ArchiveStatus reports whether the Notion database is reachable.
func (s *Service) ArchiveStatus(ctx context.Context) types.ConnectionStatus {
	return s.remote.Check(ctx)
}

// NotionProxy returns the browser-facing proxy to the Notion API.
func (s *Service) NotionProxy() *notion.Proxy {
	return notion.NewProxy(s.cfg.NotionAPIKey, notion.WithBaseURL(s.cfg.NotionBaseURL))
}

// ArchiveJobs builds one job for the project and one per task.
func (s *Service) ArchiveJobs(ctx context.Context, projectID int) ([]types.ArchiveJob, error) {
	p, err := s.store.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.Tasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	names := s.employeeNames(ctx)
	now := s.now()

	jobs := make([]types.ArchiveJob, 0, len(tasks)+1)
	jobs = append(jobs, types.ArchiveJob{
		ID:         uuid.NewString(),
		Key:        dedupe.ProjectKey(p.ID),
		Kind:       types.ArchiveProject,
		Project:    projectRecord(p, names),
		EnqueuedAt: now,
	})
	for i := range tasks {
		jobs = append(jobs, types.ArchiveJob{
			ID:         uuid.NewString(),
			Key:        dedupe.TaskKey(p.ID, tasks[i].ID),
			Kind:       types.ArchiveTask,
			Task:       taskRecord(p, tasks[i], names),
			EnqueuedAt: now,
		})
	}
	return jobs, nil
}

// ArchiveNow archives a project and its tasks synchronously, bypassing the
// queue but not the seen-set. Records already archived are skipped.
func (s *Service) ArchiveNow(ctx context.Context, projectID int) ([]ArchiveOutcome, error) {
	jobs, err := s.ArchiveJobs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]ArchiveOutcome, 0, len(jobs))
	var failed int
	for i := range jobs {
		if s.SeenAndRecord(ctx, jobs[i].Key) {
			continue
		}
		res, target := s.archiver.Archive(ctx, jobs[i])
		if !res.Success {
			s.deduper.Unrecord(ctx, jobs[i].Key)
			failed++
		}
		out = append(out, ArchiveOutcome{Key: jobs[i].Key, Target: target, Result: res})
	}
	if failed > 0 {
		return out, fmt.Errorf("%w: %d of %d records", ErrArchiveFailed, failed, len(out))
	}
	return out, nil
}

// handleArchiveJob is the worker handler. A failed job is forgotten by the
// seen-set so that a later request can retry it.
func (s *Service) handleArchiveJob(ctx context.Context, job types.ArchiveJob) error { //nolint:gocritic // hugeParam
	res, target := s.archiver.Archive(ctx, job)
	if res.Success {
		s.logger.Debug(ctx, "record archived",
			logger.String("key", job.Key),
			logger.String("target", target),
			logger.String("id", res.ID),
		)
		return nil
	}
	s.deduper.Unrecord(ctx, job.Key)
	return fmt.Errorf("%w: %s: %s", ErrArchiveFailed, job.Key, res.Error)
}

// LocalArchive lists the records stored in the local fallback archive.
func (s *Service) LocalArchive(ctx context.Context) ([]map[string]any, error) {
	if s.local == nil {
		return nil, fmt.Errorf("local archive: %w", repository.ErrNotFound)
	}
	return s.local.List(ctx)
}

func (s *Service) employeeNames(ctx context.Context) map[int]string {
	employees := s.store.Employees(ctx)
	names := make(map[int]string, len(employees))
	for i := range employees {
		names[employees[i].ID] = employees[i].Name
	}
	return names
}

func namesOf(ids []int, names map[int]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := names[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

func projectRecord(p model.Project, names map[int]string) *types.ProjectRecord { //nolint:gocritic // hugeParam
	return &types.ProjectRecord{
		Name:      p.Name,
		Status:    string(p.Status),
		Progress:  p.Progress,
		StartDate: p.StartDate.String(),
		EndDate:   p.EndDate.String(),
		TeamType:  string(p.TeamKind),
		Members:   namesOf(p.Members, names),
		Category:  p.Category,
	}
}

func taskRecord(p model.Project, t model.ProjectTask, names map[int]string) *types.TaskRecord { //nolint:gocritic // hugeParam
	skills := make([]string, 0, len(t.RequiredSkills))
	for _, id := range t.RequiredSkills {
		if len(skills) == maxArchivedSkills {
			break
		}
		skills = append(skills, catalog.SkillName(id))
	}
	return &types.TaskRecord{
		Name:           t.Name,
		ProjectName:    p.Name,
		TaskType:       string(t.TaskType),
		Progress:       t.Progress,
		Assignees:      namesOf(t.Assignees, names),
		RequiredSkills: skills,
		StartDate:      t.StartDate.String(),
		EndDate:        t.EndDate.String(),
	}
}
