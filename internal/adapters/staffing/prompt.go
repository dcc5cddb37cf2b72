package staffing

import (
	"fmt"
	"strings"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
)

const promptSkillLimit = 5

const systemPrompt = "You are an experienced HR manager. Output only valid JSON."

const promptTemplate = `Build the best team for the request below from the listed employees, and split the work into modules.

## Employees
%s

## Active projects
%s

## Request
%q

## Staffing rules
1. Prefer employees whose skills fit the requested work.
2. Prefer employees with low allocation; avoid anyone at 80%% or more.
3. Name one Leader; everyone else is a Member.
4. Use at least 2 and at most 5 people.

## Work module rules
1. Split the project into 2 to 4 work modules.
2. List the tech stack of each module.
3. Estimate the effort in hours.
4. Assign module owners by employee ID, chosen from the team.

Reply with JSON only, in exactly this shape:
{
  "projectName": "project or work name",
  "team": [
    { "employeeId": 1, "employeeName": "name", "role": "Leader or Member", "reason": "one sentence" }
  ],
  "workModules": [
    { "name": "module", "techStack": ["tech1", "tech2"], "estimatedHours": 40, "assigneeIds": [1, 2] }
  ],
  "summary": "two or three sentences about the team"
}`

// BuildPrompt renders the staffing prompt.
func BuildPrompt(request string, employees []model.Employee, projects []model.Project) string {
	return fmt.Sprintf(promptTemplate, formatEmployees(employees), formatProjects(projects), request)
}

func formatEmployees(employees []model.Employee) string {
	if len(employees) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(employees))
	for _, e := range employees {
		lines = append(lines, fmt.Sprintf("- %s (ID: %d): %s [%s]\n    Skills: %s\n    Allocation: %d%%, status: %s",
			e.Name, e.ID, e.Role, e.TeamKind.Label(), skillSummary(e), e.TotalAllocation, e.Status))
	}
	return strings.Join(lines, "\n")
}

// skillSummary lists the first few typed skills by name, falling back to the
// legacy free-text list.
func skillSummary(e model.Employee) string {
	if len(e.SkillSet) == 0 {
		return strings.Join(e.Skills, ", ")
	}
	n := min(len(e.SkillSet), promptSkillLimit)
	names := make([]string, 0, n)
	for _, id := range e.SkillSet[:n] {
		names = append(names, catalog.SkillName(id))
	}
	out := strings.Join(names, ", ")
	if extra := len(e.SkillSet) - promptSkillLimit; extra > 0 {
		out += fmt.Sprintf(" and %d more", extra)
	}
	return out
}

func formatProjects(projects []model.Project) string {
	lines := []string{}
	for _, p := range projects {
		if p.Status == model.StatusCompleted {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %d members", p.Name, p.Category, len(p.Members)))
	}
	if len(lines) == 0 {
		return "(none)"
	}
	return strings.Join(lines, "\n")
}
