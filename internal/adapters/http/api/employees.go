package api

import (
	"context"
	"net/http"

	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
)

// EmployeeDependencies is the read side of the roster plus the scoring and
// salary services.
type EmployeeDependencies interface {
	Employees(ctx context.Context) []model.Employee
	Employee(ctx context.Context, id int) (model.Employee, error)
	ScoreEmployee(ctx context.Context, id int, period string) (types.PerformanceScore, error)
	ScoreAll(ctx context.Context, period string) ([]types.PerformanceScore, error)
	CompareSalary(ctx context.Context, id int) (types.SalaryComparison, error)
}

// EmployeeHandler serves the /employees and /performance routes.
type EmployeeHandler struct {
	deps EmployeeDependencies
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(deps EmployeeDependencies) *EmployeeHandler {
	return &EmployeeHandler{deps: deps}
}

// HandleList handles GET /employees.
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Employees(r.Context()))
}

// HandleGet handles GET /employees/{id}.
func (h *EmployeeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_employee"
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	e, err := h.deps.Employee(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// HandlePerformance handles GET /employees/{id}/performance?period=.
func (h *EmployeeHandler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	const op = "api.employee_performance"
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	score, err := h.deps.ScoreEmployee(r.Context(), id, r.URL.Query().Get("period"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

// HandlePerformanceAll handles GET /performance?period=.
func (h *EmployeeHandler) HandlePerformanceAll(w http.ResponseWriter, r *http.Request) {
	const op = "api.performance"
	scores, err := h.deps.ScoreAll(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

// HandleSalary handles GET /employees/{id}/salary.
func (h *EmployeeHandler) HandleSalary(w http.ResponseWriter, r *http.Request) {
	const op = "api.employee_salary"
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	cmp, err := h.deps.CompareSalary(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}
