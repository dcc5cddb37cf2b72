package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/teamboard/internal/domain/allocation"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/pkg/metrics"
)

// MemStore is an in-memory Store guarded by a RWMutex. Reads hand out deep
// copies; every mutation re-runs the allocation aggregator before returning.
type MemStore struct {
	mu        sync.RWMutex
	employees map[int]*model.Employee
	projects  map[int]*model.Project
	tasks     map[int][]model.ProjectTask

	seed model.Roster
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates a store, optionally seeded with WithRoster.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		employees: make(map[int]*model.Employee),
		projects:  make(map[int]*model.Project),
		tasks:     make(map[int][]model.ProjectTask),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, e := range s.seed.Employees {
		c := e.Clone()
		allocation.Apply(&c)
		s.employees[c.ID] = &c
	}
	for _, p := range s.seed.Projects {
		c := p.Clone()
		s.projects[c.ID] = &c
	}
	for pid, ts := range s.seed.Tasks {
		s.tasks[pid] = cloneTasks(ts)
	}
	s.seed = model.Roster{}

	s.publishGauges()
	return s
}

// Employees implements Store.
func (s *MemStore) Employees(_ context.Context) []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employeesLocked()
}

func (s *MemStore) employeesLocked() []model.Employee {
	out := make([]model.Employee, 0, len(s.employees))
	for _, id := range sortedKeys(s.employees) {
		out = append(out, s.employees[id].Clone())
	}
	return out
}

// Employee implements Store.
func (s *MemStore) Employee(_ context.Context, id int) (model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		metrics.RecordError("repository", "not_found", "warning")
		return model.Employee{}, fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}
	return e.Clone(), nil
}

// Projects implements Store.
func (s *MemStore) Projects(_ context.Context) []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectsLocked()
}

func (s *MemStore) projectsLocked() []model.Project {
	out := make([]model.Project, 0, len(s.projects))
	for _, id := range sortedKeys(s.projects) {
		out = append(out, s.projects[id].Clone())
	}
	return out
}

// Project implements Store.
func (s *MemStore) Project(_ context.Context, id int) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		metrics.RecordError("repository", "not_found", "warning")
		return model.Project{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return p.Clone(), nil
}

// Tasks implements Store.
func (s *MemStore) Tasks(_ context.Context, projectID int) ([]model.ProjectTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.projects[projectID]; !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	return cloneTasks(s.tasks[projectID]), nil
}

// Snapshot implements Store.
func (s *MemStore) Snapshot(_ context.Context) model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := model.Roster{
		Employees: s.employeesLocked(),
		Projects:  s.projectsLocked(),
		Tasks:     make(map[int][]model.ProjectTask, len(s.tasks)),
	}
	for pid, ts := range s.tasks {
		r.Tasks[pid] = cloneTasks(ts)
	}
	return r
}

// AssignAllocations implements Store. The whole batch is validated before any
// state changes; on error the roster is untouched.
func (s *MemStore) AssignAllocations(_ context.Context, projectID int, allocs []model.Allocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	for _, a := range allocs {
		if _, ok := s.employees[a.EmployeeID]; !ok {
			return fmt.Errorf("%w: unknown employee %d", ErrInvalidAllocation, a.EmployeeID)
		}
		if a.Percent < 0 || a.Percent > 100 {
			return fmt.Errorf("%w: percent %d out of range for employee %d", ErrInvalidAllocation, a.Percent, a.EmployeeID)
		}
		if !a.StartDate.IsZero() && !a.EndDate.IsZero() && a.EndDate.Before(a.StartDate) {
			return fmt.Errorf("%w: end date before start date for employee %d", ErrInvalidAllocation, a.EmployeeID)
		}
	}

	for _, e := range s.employees {
		allocation.Remove(e, allocation.ForProject(projectID))
	}
	members := make([]int, 0, len(allocs))
	for _, a := range allocs {
		a.ProjectID = projectID
		allocation.Add(s.employees[a.EmployeeID], a)
		if !slices.Contains(members, a.EmployeeID) {
			members = append(members, a.EmployeeID)
		}
	}
	p.Members = members

	metrics.RecordAllocationUpdate()
	s.publishGaugesLocked()
	return nil
}

// RemoveProject implements Store.
func (s *MemStore) RemoveProject(_ context.Context, projectID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[projectID]; !ok {
		return fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	delete(s.projects, projectID)
	delete(s.tasks, projectID)
	for _, e := range s.employees {
		allocation.Remove(e, allocation.ForProject(projectID))
	}

	metrics.RecordAllocationUpdate()
	s.publishGaugesLocked()
	return nil
}

func (s *MemStore) publishGauges() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.publishGaugesLocked()
}

func (s *MemStore) publishGaugesLocked() {
	overloaded := 0
	for _, e := range s.employees {
		if e.Risk == model.RiskCritical {
			overloaded++
		}
	}
	metrics.UpdateRoster(len(s.employees), len(s.projects), overloaded)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func cloneTasks(ts []model.ProjectTask) []model.ProjectTask {
	out := make([]model.ProjectTask, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}
