// Package catalog is the static, read-only registry of task definitions and
// skills, with lookup helpers over it.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/okian/teamboard/internal/domain/model"
)

// ErrInvalidCatalog is returned by Validate when the static data is inconsistent.
var ErrInvalidCatalog = errors.New("invalid catalog")

// TaskSkills is the result of SkillsForTask.
type TaskSkills struct {
	Required    []model.SkillDefinition `json:"required"`
	Recommended []model.SkillDefinition `json:"recommended"`
}

// SkillTasks is the result of TasksForSkill.
type SkillTasks struct {
	Required    []model.TaskDefinition `json:"required"`
	Recommended []model.TaskDefinition `json:"recommended"`
}

var (
	indexOnce sync.Once
	taskIndex map[model.TaskID]int
	skillIdx  map[model.SkillID]int

	matrixOnce sync.Once
	matrix     []model.MatrixEntry
)

func buildIndex() {
	indexOnce.Do(func() {
		taskIndex = make(map[model.TaskID]int, len(tasks))
		for i, t := range tasks {
			taskIndex[t.ID] = i
		}
		skillIdx = make(map[model.SkillID]int, len(skillDefs))
		for i, s := range skillDefs {
			skillIdx[s.ID] = i
		}
	})
}

// Teams returns the static teams.
func Teams() []model.Team {
	return append([]model.Team(nil), teams...)
}

// Team returns the team with the given identifier.
func Team(id string) (model.Team, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t, true
		}
	}
	return model.Team{}, false
}

// Tasks returns every task definition in catalog order.
func Tasks() []model.TaskDefinition {
	out := make([]model.TaskDefinition, len(tasks))
	for i, t := range tasks {
		out[i] = cloneTask(t)
	}
	return out
}

// Skills returns every skill definition in catalog order.
func Skills() []model.SkillDefinition {
	return append([]model.SkillDefinition(nil), skillDefs...)
}

// Task looks up a task definition.
func Task(id model.TaskID) (model.TaskDefinition, bool) {
	buildIndex()
	i, ok := taskIndex[id]
	if !ok {
		return model.TaskDefinition{}, false
	}
	return cloneTask(tasks[i]), true
}

// Skill looks up a skill definition.
func Skill(id model.SkillID) (model.SkillDefinition, bool) {
	buildIndex()
	i, ok := skillIdx[id]
	if !ok {
		return model.SkillDefinition{}, false
	}
	return skillDefs[i], true
}

// HasTask reports whether id is a known task category.
func HasTask(id model.TaskID) bool {
	_, ok := Task(id)
	return ok
}

// HasSkill reports whether id is a known skill.
func HasSkill(id model.SkillID) bool {
	_, ok := Skill(id)
	return ok
}

// SkillName returns the display name of a skill, or the raw identifier when
// the skill is unknown.
func SkillName(id model.SkillID) string {
	if s, ok := Skill(id); ok {
		return s.Name
	}
	return string(id)
}

// SkillsForTask resolves the required and recommended skills of a task.
// An unknown task yields empty lists and found == false; it is not an error.
func SkillsForTask(id model.TaskID) (res TaskSkills, found bool) {
	res = TaskSkills{
		Required:    []model.SkillDefinition{},
		Recommended: []model.SkillDefinition{},
	}
	t, ok := Task(id)
	if !ok {
		return res, false
	}
	res.Required = resolveSkills(t.RequiredSkills)
	res.Recommended = resolveSkills(t.RecommendedSkills)
	return res, true
}

func resolveSkills(ids []model.SkillID) []model.SkillDefinition {
	out := make([]model.SkillDefinition, 0, len(ids))
	for _, id := range ids {
		if s, ok := Skill(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// TasksForSkill returns the tasks that require or recommend a skill. The
// found flag is false when the skill is not in the catalog.
func TasksForSkill(id model.SkillID) (res SkillTasks, found bool) {
	res = SkillTasks{
		Required:    []model.TaskDefinition{},
		Recommended: []model.TaskDefinition{},
	}
	for _, t := range tasks {
		if contains(t.RequiredSkills, id) {
			res.Required = append(res.Required, cloneTask(t))
		}
		if contains(t.RecommendedSkills, id) {
			res.Recommended = append(res.Recommended, cloneTask(t))
		}
	}
	return res, HasSkill(id)
}

// TasksByTeam filters tasks by exact team match.
func TasksByTeam(kind model.TeamKind) []model.TaskDefinition {
	out := []model.TaskDefinition{}
	for _, t := range tasks {
		if t.Team == kind {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// SkillsByTeam returns the skills owned by kind plus every COMMON skill.
func SkillsByTeam(kind model.TeamKind) []model.SkillDefinition {
	out := []model.SkillDefinition{}
	for _, s := range skillDefs {
		if s.Team == kind || s.Team == model.TeamCommon {
			out = append(out, s)
		}
	}
	return out
}

// TasksByArea filters tasks by area.
func TasksByArea(area model.Area) []model.TaskDefinition {
	out := []model.TaskDefinition{}
	for _, t := range tasks {
		if t.Area == area {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Matrix flattens the catalog into one row per (task, skill) pair. The table
// is built on first use and callers receive a copy.
func Matrix() []model.MatrixEntry {
	matrixOnce.Do(func() {
		for _, t := range tasks {
			for _, s := range t.RequiredSkills {
				matrix = append(matrix, model.MatrixEntry{TaskID: t.ID, SkillID: s, Requirement: model.Required})
			}
			for _, s := range t.RecommendedSkills {
				matrix = append(matrix, model.MatrixEntry{TaskID: t.ID, SkillID: s, Requirement: model.Recommended})
			}
		}
	})
	return append([]model.MatrixEntry(nil), matrix...)
}

// Validate checks that identifiers are unique and that every skill a task
// references exists.
func Validate() error {
	seenTasks := make(map[model.TaskID]struct{}, len(tasks))
	seenSkills := make(map[model.SkillID]struct{}, len(skillDefs))
	for _, s := range skillDefs {
		if _, dup := seenSkills[s.ID]; dup {
			return fmt.Errorf("%w: duplicate skill %s", ErrInvalidCatalog, s.ID)
		}
		seenSkills[s.ID] = struct{}{}
	}
	for _, t := range tasks {
		if _, dup := seenTasks[t.ID]; dup {
			return fmt.Errorf("%w: duplicate task %s", ErrInvalidCatalog, t.ID)
		}
		seenTasks[t.ID] = struct{}{}
		for _, ids := range [][]model.SkillID{t.RequiredSkills, t.RecommendedSkills} {
			for _, id := range ids {
				if _, ok := seenSkills[id]; !ok {
					return fmt.Errorf("%w: task %s references unknown skill %s", ErrInvalidCatalog, t.ID, id)
				}
			}
		}
	}
	return nil
}

func contains(ids []model.SkillID, id model.SkillID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func cloneTask(t model.TaskDefinition) model.TaskDefinition {
	t.Deliverables = append([]string(nil), t.Deliverables...)
	t.RequiredSkills = append([]model.SkillID(nil), t.RequiredSkills...)
	t.RecommendedSkills = append([]model.SkillID(nil), t.RecommendedSkills...)
	return t
}
