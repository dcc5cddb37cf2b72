// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/domain/benchmark"
)

// Dependencies bundles every interface the handlers need. The service layer
// implements all of them; tests can stub each handler's slice separately.
type Dependencies interface {
	EmployeeDependencies
	CatalogDependencies
	ProjectDependencies
	StaffingDependencies
	StatsProvider
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	employeeHandler *EmployeeHandler
	catalogHandler  *CatalogHandler
	projectHandler  *ProjectHandler
	staffingHandler *StaffingHandler
	notionProxy     http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithNotionProxy mounts h under /api/notion/.
func WithNotionProxy(h http.Handler) Option {
	return func(s *Server) {
		s.notionProxy = h
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		employeeHandler: NewEmployeeHandler(deps),
		catalogHandler:  NewCatalogHandler(deps),
		projectHandler:  NewProjectHandler(deps),
		staffingHandler: NewStaffingHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, MetricsMiddleware(h, endpoint))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	route("GET /stats", "stats", s.statsHandler.HandleStats)

	route("GET /employees", "employees", s.employeeHandler.HandleList)
	route("GET /employees/{id}", "employee", s.employeeHandler.HandleGet)
	route("GET /employees/{id}/performance", "employee_performance", s.employeeHandler.HandlePerformance)
	route("GET /employees/{id}/salary", "employee_salary", s.employeeHandler.HandleSalary)
	route("GET /performance", "performance", s.employeeHandler.HandlePerformanceAll)

	route("GET /catalog/tasks", "catalog_tasks", s.catalogHandler.HandleTasks)
	route("GET /catalog/tasks/{id}/skills", "catalog_task_skills", s.catalogHandler.HandleSkillsForTask)
	route("GET /catalog/skills", "catalog_skills", s.catalogHandler.HandleSkills)
	route("GET /catalog/skills/{id}/tasks", "catalog_skill_tasks", s.catalogHandler.HandleTasksForSkill)
	route("GET /catalog/matrix", "catalog_matrix", s.catalogHandler.HandleMatrix)

	route("GET /projects", "projects", s.projectHandler.HandleList)
	route("PUT /projects/{id}/allocations", "project_allocations", s.projectHandler.HandleAssign)
	route("DELETE /projects/{id}", "project_delete", s.projectHandler.HandleDelete)
	route("POST /projects/{id}/archive", "project_archive", s.projectHandler.HandleArchive)

	route("POST /staffing/proposals", "staffing_proposals", s.staffingHandler.HandlePropose)
	route("GET /archive/status", "archive_status", s.staffingHandler.HandleArchiveStatus)

	if s.notionProxy != nil {
		route("/api/notion/", "notion_proxy", s.notionProxy.ServeHTTP)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps errors from the service layer onto status codes.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, benchmark.ErrBenchmarkNotFound):
		writeError(w, http.StatusNotFound, "benchmark_not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, benchmark.ErrSalaryMissing):
		writeError(w, http.StatusUnprocessableEntity, "salary_missing", Wrap(op, err))
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, repository.ErrInvalidAllocation), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "cancelled", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// pathID parses the {id} wildcard as a positive integer.
func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id " + strconv.Quote(raw))
	}
	return id, nil
}
