// Package repository holds the roster of employees, projects and tasks.
package repository

import (
	"context"

	"github.com/okian/teamboard/internal/domain/model"
)

// Store provides read/write access to the roster.
type Store interface {
	// Employees returns every employee ordered by ID, with derived allocation totals.
	Employees(ctx context.Context) []model.Employee
	// Employee returns one employee or ErrNotFound.
	Employee(ctx context.Context, id int) (model.Employee, error)

	Projects(ctx context.Context) []model.Project
	Project(ctx context.Context, id int) (model.Project, error)

	// Tasks returns the tasks of a project. Returns ErrNotFound for unknown projects.
	Tasks(ctx context.Context, projectID int) ([]model.ProjectTask, error)

	// Snapshot returns a consistent deep copy of the whole roster.
	Snapshot(ctx context.Context) model.Roster

	// AssignAllocations replaces the staffing of a project and re-derives
	// every affected employee's total and risk tier.
	AssignAllocations(ctx context.Context, projectID int, allocs []model.Allocation) error

	// RemoveProject deletes a project with its tasks and allocations.
	RemoveProject(ctx context.Context, projectID int) error
}
