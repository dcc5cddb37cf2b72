package service

import (
	"context"
	"errors"
	"time"

	"github.com/okian/teamboard/internal/domain/benchmark"
	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

// Employees returns every employee with its cached allocation total.
func (s *Service) Employees(ctx context.Context) []model.Employee {
	return s.store.Employees(ctx)
}

// Employee returns one employee.
func (s *Service) Employee(ctx context.Context, id int) (model.Employee, error) {
	return s.store.Employee(ctx, id)
}

// Projects returns every project.
func (s *Service) Projects(ctx context.Context) []model.Project {
	return s.store.Projects(ctx)
}

// Snapshot returns a copy of the whole roster.
func (s *Service) Snapshot(ctx context.Context) model.Roster {
	return s.store.Snapshot(ctx)
}

func (s *Service) period(p string) string {
	if p == "" {
		return s.cfg.EvaluationPeriod
	}
	return p
}

// ScoreEmployee computes the performance score of one employee. An empty
// period falls back to the configured evaluation period.
func (s *Service) ScoreEmployee(ctx context.Context, id int, period string) (types.PerformanceScore, error) {
	if err := ctx.Err(); err != nil {
		return types.PerformanceScore{}, err
	}
	emp, err := s.store.Employee(ctx, id)
	if err != nil {
		return types.PerformanceScore{}, err
	}
	start := time.Now()
	r := s.store.Snapshot(ctx)
	score := s.engine.Score(emp, r.Projects, r.Tasks, s.period(period))
	metrics.RecordScore(time.Since(start))
	return score, nil
}

// ScoreAll scores the whole roster, best first.
func (s *Service) ScoreAll(ctx context.Context, period string) ([]types.PerformanceScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	scores := s.engine.ScoreAll(s.store.Snapshot(ctx), s.period(period))
	metrics.RecordScore(time.Since(start))
	return scores, nil
}

// CompareSalary compares an employee's salary with the market benchmark.
func (s *Service) CompareSalary(ctx context.Context, id int) (types.SalaryComparison, error) {
	emp, err := s.store.Employee(ctx, id)
	if err != nil {
		return types.SalaryComparison{}, err
	}
	c, err := s.comparator.Compare(emp)
	switch {
	case errors.Is(err, benchmark.ErrBenchmarkNotFound):
		metrics.RecordSalaryComparison("benchmark_not_found")
		return c, err
	case errors.Is(err, benchmark.ErrSalaryMissing):
		metrics.RecordSalaryComparison("salary_missing")
		return c, err
	case err != nil:
		return c, err
	}
	metrics.RecordSalaryComparison(string(c.Classification))
	return c, nil
}

// SkillsForTask resolves a task's skills. Unknown tasks degrade to empty
// lists and are logged.
func (s *Service) SkillsForTask(ctx context.Context, id model.TaskID) (catalog.TaskSkills, bool) {
	res, found := catalog.SkillsForTask(id)
	if !found {
		metrics.RecordDegradedLookup("task")
		s.logger.Warn(ctx, "unknown task category", logger.String("task", string(id)))
	}
	return res, found
}

// TasksForSkill returns the tasks that use a skill.
func (s *Service) TasksForSkill(ctx context.Context, id model.SkillID) (catalog.SkillTasks, bool) {
	res, found := catalog.TasksForSkill(id)
	if !found {
		metrics.RecordDegradedLookup("skill")
		s.logger.Warn(ctx, "unknown skill", logger.String("skill", string(id)))
	}
	return res, found
}

// AssignAllocations replaces the allocations of a project and refreshes the
// graph projection.
func (s *Service) AssignAllocations(ctx context.Context, projectID int, allocs []model.Allocation) error {
	if err := s.store.AssignAllocations(ctx, projectID, allocs); err != nil {
		return err
	}
	s.syncGraph(ctx)
	return nil
}

// RemoveProject deletes a project with its tasks and allocations.
func (s *Service) RemoveProject(ctx context.Context, projectID int) error {
	if err := s.store.RemoveProject(ctx, projectID); err != nil {
		return err
	}
	s.syncGraph(ctx)
	return nil
}

// ProposeTeam asks the staffing service for a team over the current roster.
func (s *Service) ProposeTeam(ctx context.Context, request string) types.TeamProposal {
	r := s.store.Snapshot(ctx)
	return s.staffing.RequestTeamComposition(ctx, request, r.Employees, r.Projects)
}

// syncGraph mirrors the roster into the graph when one is attached. Failures
// are logged; the roster stays authoritative.
func (s *Service) syncGraph(ctx context.Context) {
	if s.graph == nil {
		return
	}
	if err := s.graph.Project(ctx, s.store.Snapshot(ctx)); err != nil {
		metrics.RecordError("graph", "project", "warning")
		s.logger.Warn(ctx, "graph projection failed", logger.Error(err))
	}
}
