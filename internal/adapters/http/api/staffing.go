package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/teamboard/internal/domain/types"
)

// StaffingDependencies covers the LLM staffing service and the archive
// connection check.
type StaffingDependencies interface {
	ProposeTeam(ctx context.Context, request string) types.TeamProposal
	ArchiveStatus(ctx context.Context) types.ConnectionStatus
}

// StaffingHandler serves staffing proposals and archive status.
type StaffingHandler struct {
	deps StaffingDependencies
}

// NewStaffingHandler creates a new staffing handler.
func NewStaffingHandler(deps StaffingDependencies) *StaffingHandler {
	return &StaffingHandler{deps: deps}
}

type proposalRequest struct {
	Request string `json:"request"`
}

// HandlePropose handles POST /staffing/proposals. Upstream failures are
// reported inside the proposal with a 502 status.
func (h *StaffingHandler) HandlePropose(w http.ResponseWriter, r *http.Request) {
	const op = "api.propose_team"
	var req proposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Request) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing request")))
		return
	}
	proposal := h.deps.ProposeTeam(r.Context(), req.Request)
	if proposal.Failed() {
		writeJSON(w, http.StatusBadGateway, proposal)
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

// HandleArchiveStatus handles GET /archive/status.
func (h *StaffingHandler) HandleArchiveStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.ArchiveStatus(r.Context()))
}
