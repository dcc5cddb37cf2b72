package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/teamboard/internal/domain/dedupe"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
)

// ProjectDependencies covers project reads, staffing writes and the archive
// pipeline.
type ProjectDependencies interface {
	dedupe.Deduper

	Projects(ctx context.Context) []model.Project
	AssignAllocations(ctx context.Context, projectID int, allocs []model.Allocation) error
	RemoveProject(ctx context.Context, projectID int) error

	// ArchiveJobs builds one job for the project and one per task, keyed for
	// deduplication.
	ArchiveJobs(ctx context.Context, projectID int) ([]types.ArchiveJob, error)
	// Enqueue pushes a job for async processing. Returns false on backpressure.
	Enqueue(ctx context.Context, job types.ArchiveJob) bool
}

// ProjectHandler serves the /projects routes.
type ProjectHandler struct {
	deps ProjectDependencies
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(deps ProjectDependencies) *ProjectHandler {
	return &ProjectHandler{deps: deps}
}

type allocationsRequest struct {
	Allocations []model.Allocation `json:"allocations"`
}

type archiveResponse struct {
	Status     string `json:"status"`
	Duplicate  bool   `json:"duplicate"`
	Accepted   int    `json:"accepted"`
	Duplicates int    `json:"duplicates"`
}

// HandleList handles GET /projects.
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Projects(r.Context()))
}

// HandleAssign handles PUT /projects/{id}/allocations. The body replaces the
// project's staffing and the aggregator re-runs for every touched employee.
func (h *ProjectHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	const op = "api.assign_allocations"
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	var req allocationsRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.Allocations == nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing allocations")))
		return
	}
	if err := h.deps.AssignAllocations(r.Context(), id, req.Allocations); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /projects/{id}.
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_project"
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.RemoveProject(r.Context(), id); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleArchive handles POST /projects/{id}/archive. Jobs already seen are
// skipped; when nothing new was queued the response is 200 with duplicate set.
func (h *ProjectHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	const op = "api.archive_project"
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	jobs, err := h.deps.ArchiveJobs(ctx, id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}

	resp := archiveResponse{}
	for _, job := range jobs {
		if h.deps.SeenAndRecord(ctx, job.Key) {
			resp.Duplicates++
			continue
		}
		if ok := h.deps.Enqueue(ctx, job); !ok {
			// Roll back so the job can be retried.
			h.deps.Unrecord(ctx, job.Key)
			writeError(w, http.StatusTooManyRequests, "backpressure",
				WrapKind(op, ErrBackpressure, fmt.Errorf("%d of %d jobs queued", resp.Accepted, len(jobs))))
			return
		}
		resp.Accepted++
	}

	if resp.Accepted == 0 {
		resp.Status, resp.Duplicate = "duplicate", true
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Status = "accepted"
	writeJSON(w, http.StatusAccepted, resp)
}
