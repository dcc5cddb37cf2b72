package api

import (
	"context"
	"net/http"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
)

// CatalogDependencies resolves catalog lookups. Unknown identifiers are not
// errors; the second result reports whether the identifier was known.
type CatalogDependencies interface {
	SkillsForTask(ctx context.Context, id model.TaskID) (catalog.TaskSkills, bool)
	TasksForSkill(ctx context.Context, id model.SkillID) (catalog.SkillTasks, bool)
}

// CatalogHandler serves the static task and skill catalog.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

type taskSkillsResponse struct {
	TaskID model.TaskID `json:"task_id"`
	Found  bool         `json:"found"`
	catalog.TaskSkills
}

type skillTasksResponse struct {
	SkillID model.SkillID `json:"skill_id"`
	Found   bool          `json:"found"`
	catalog.SkillTasks
}

// HandleTasks handles GET /catalog/tasks?team=&area=.
func (h *CatalogHandler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tasks := catalog.Tasks()
	if team := q.Get("team"); team != "" {
		tasks = catalog.TasksByTeam(model.TeamKind(team))
	}
	if area := model.Area(q.Get("area")); area != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Area == area {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	writeJSON(w, http.StatusOK, tasks)
}

// HandleSkills handles GET /catalog/skills?team=.
func (h *CatalogHandler) HandleSkills(w http.ResponseWriter, r *http.Request) {
	if team := r.URL.Query().Get("team"); team != "" {
		writeJSON(w, http.StatusOK, catalog.SkillsByTeam(model.TeamKind(team)))
		return
	}
	writeJSON(w, http.StatusOK, catalog.Skills())
}

// HandleSkillsForTask handles GET /catalog/tasks/{id}/skills.
func (h *CatalogHandler) HandleSkillsForTask(w http.ResponseWriter, r *http.Request) {
	id := model.TaskID(r.PathValue("id"))
	res, found := h.deps.SkillsForTask(r.Context(), id)
	writeJSON(w, http.StatusOK, taskSkillsResponse{TaskID: id, Found: found, TaskSkills: res})
}

// HandleTasksForSkill handles GET /catalog/skills/{id}/tasks.
func (h *CatalogHandler) HandleTasksForSkill(w http.ResponseWriter, r *http.Request) {
	id := model.SkillID(r.PathValue("id"))
	res, found := h.deps.TasksForSkill(r.Context(), id)
	writeJSON(w, http.StatusOK, skillTasksResponse{SkillID: id, Found: found, SkillTasks: res})
}

// HandleMatrix handles GET /catalog/matrix.
func (h *CatalogHandler) HandleMatrix(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Matrix())
}
