package graph

import (
	"sort"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
)

// Statement is one parameterised Cypher query.
type Statement struct {
	Cypher string
	Params map[string]any
}

const (
	clearAllocations = `MATCH (:Employee)-[a:ALLOCATED]->(:Project) DELETE a`

	mergeEmployees = `UNWIND $rows AS row
MERGE (e:Employee {id: row.id})
SET e.name = row.name, e.role = row.role, e.team = row.team,
    e.totalAllocation = row.total, e.risk = row.risk`

	mergeProjects = `UNWIND $rows AS row
MERGE (p:Project {id: row.id})
SET p.name = row.name, p.status = row.status, p.progress = row.progress, p.team = row.team`

	mergeSkills = `UNWIND $rows AS row
MERGE (s:Skill {id: row.id})
SET s.name = row.name, s.category = row.category, s.team = row.team`

	mergeTasks = `UNWIND $rows AS row
MERGE (t:Task {id: row.id})
SET t.name = row.name, t.area = row.area, t.team = row.team`

	mergeRequires = `UNWIND $rows AS row
MATCH (t:Task {id: row.task}), (s:Skill {id: row.skill})
MERGE (t)-[r:REQUIRES]->(s)
SET r.requirement = row.requirement`

	mergeHasSkill = `UNWIND $rows AS row
MATCH (e:Employee {id: row.employee}), (s:Skill {id: row.skill})
MERGE (e)-[:HAS_SKILL]->(s)`

	mergeAllocated = `UNWIND $rows AS row
MATCH (e:Employee {id: row.employee}), (p:Project {id: row.project})
MERGE (e)-[a:ALLOCATED]->(p)
SET a.percent = row.percent`
)

// BuildStatements renders the roster and the catalog as an idempotent batch.
// Allocation edges are rebuilt from scratch; nodes are merged in place.
// Several allocations of one employee to one project collapse into one edge
// carrying the summed percent.
func BuildStatements(r model.Roster) []Statement {
	employees := make([]map[string]any, 0, len(r.Employees))
	var hasSkill, allocated []map[string]any
	for _, e := range r.Employees {
		employees = append(employees, map[string]any{
			"id":    int64(e.ID),
			"name":  e.Name,
			"role":  e.Role,
			"team":  string(e.TeamKind),
			"total": int64(e.TotalAllocation),
			"risk":  string(e.Risk),
		})
		for _, s := range e.SkillSet {
			hasSkill = append(hasSkill, map[string]any{"employee": int64(e.ID), "skill": string(s)})
		}

		perProject := map[int]int{}
		for _, a := range e.Allocations {
			perProject[a.ProjectID] += a.Percent
		}
		projectIDs := make([]int, 0, len(perProject))
		for pid := range perProject {
			projectIDs = append(projectIDs, pid)
		}
		sort.Ints(projectIDs)
		for _, pid := range projectIDs {
			allocated = append(allocated, map[string]any{
				"employee": int64(e.ID),
				"project":  int64(pid),
				"percent":  int64(perProject[pid]),
			})
		}
	}

	projects := make([]map[string]any, 0, len(r.Projects))
	for _, p := range r.Projects {
		projects = append(projects, map[string]any{
			"id":       int64(p.ID),
			"name":     p.Name,
			"status":   string(p.Status),
			"progress": int64(p.Progress),
			"team":     string(p.TeamKind),
		})
	}

	skills := []map[string]any{}
	for _, s := range catalog.Skills() {
		skills = append(skills, map[string]any{
			"id": string(s.ID), "name": s.Name, "category": string(s.Category), "team": string(s.Team),
		})
	}
	tasks := []map[string]any{}
	for _, t := range catalog.Tasks() {
		tasks = append(tasks, map[string]any{
			"id": string(t.ID), "name": t.Name, "area": string(t.Area), "team": string(t.Team),
		})
	}
	requires := []map[string]any{}
	for _, m := range catalog.Matrix() {
		requires = append(requires, map[string]any{
			"task": string(m.TaskID), "skill": string(m.SkillID), "requirement": string(m.Requirement),
		})
	}

	return []Statement{
		{Cypher: clearAllocations},
		{Cypher: mergeSkills, Params: rows(skills)},
		{Cypher: mergeTasks, Params: rows(tasks)},
		{Cypher: mergeRequires, Params: rows(requires)},
		{Cypher: mergeEmployees, Params: rows(employees)},
		{Cypher: mergeProjects, Params: rows(projects)},
		{Cypher: mergeHasSkill, Params: rows(hasSkill)},
		{Cypher: mergeAllocated, Params: rows(allocated)},
	}
}

func rows(r []map[string]any) map[string]any {
	if r == nil {
		r = []map[string]any{}
	}
	return map[string]any{"rows": r}
}
