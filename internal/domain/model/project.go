package model

// ProjectStatus is the self-reported state of a project.
type ProjectStatus string

const (
	StatusOnTrack   ProjectStatus = "OnTrack"
	StatusDelayed   ProjectStatus = "Delayed"
	StatusAtRisk    ProjectStatus = "AtRisk"
	StatusCompleted ProjectStatus = "Completed"
	StatusPlanning  ProjectStatus = "Planning"
)

// Project is a unit of delivery staffed by employees.
type Project struct {
	ID       int           `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Phase    string        `json:"phase" yaml:"phase"`
	Progress int           `json:"progress" yaml:"progress"`
	Status   ProjectStatus `json:"status" yaml:"status"`

	// Members holds employee IDs.
	Members     []int    `json:"members" yaml:"members"`
	StartDate   Date     `json:"start_date" yaml:"start_date"`
	EndDate     Date     `json:"end_date" yaml:"end_date"`
	Category    string   `json:"category" yaml:"category"`
	TeamKind    TeamKind `json:"team_kind" yaml:"team_kind"`
	Difficulty  string   `json:"difficulty,omitempty" yaml:"difficulty"`
	Description string   `json:"description,omitempty" yaml:"description"`
}

// HasMember reports whether employeeID is on the project.
func (p *Project) HasMember(employeeID int) bool {
	for _, m := range p.Members {
		if m == employeeID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p Project) Clone() Project {
	c := p
	c.Members = append([]int(nil), p.Members...)
	return c
}

// AssignmentRole distinguishes a task lead from members.
type AssignmentRole string

const (
	RoleLead   AssignmentRole = "LEAD"
	RoleMember AssignmentRole = "MEMBER"
)

// TaskAssignment records one assignee's share of a task.
type TaskAssignment struct {
	EmployeeID int            `json:"employee_id" yaml:"employee_id"`
	Percent    int            `json:"percent" yaml:"percent"`
	Role       AssignmentRole `json:"role" yaml:"role"`
}

// ProjectTask is a concrete unit of work inside one project. Its skill sets
// are a denormalised copy of the catalog and may drift from it.
type ProjectTask struct {
	ID                  string           `json:"id" yaml:"id"`
	Name                string           `json:"name" yaml:"name"`
	Progress            int              `json:"progress" yaml:"progress"`
	TechStack           []string         `json:"tech_stack" yaml:"tech_stack"`
	EstimatedHours      int              `json:"estimated_hours" yaml:"estimated_hours"`
	StartDate           Date             `json:"start_date" yaml:"start_date"`
	EndDate             Date             `json:"end_date" yaml:"end_date"`
	Assignees           []int            `json:"assignees" yaml:"assignees"`
	TaskType            TaskID           `json:"task_type" yaml:"task_type"`
	RequiredSkills      []SkillID        `json:"required_skills" yaml:"required_skills"`
	RecommendedSkills   []SkillID        `json:"recommended_skills" yaml:"recommended_skills"`
	AssigneeAllocations []TaskAssignment `json:"assignee_allocations" yaml:"assignee_allocations"`
	Deliverables        []string         `json:"deliverables" yaml:"deliverables"`
}

// HasAssignee reports whether employeeID works on the task.
func (t *ProjectTask) HasAssignee(employeeID int) bool {
	for _, a := range t.Assignees {
		if a == employeeID {
			return true
		}
	}
	return false
}

// AllocationPercent sums the per-assignee shares of the task.
func (t *ProjectTask) AllocationPercent() int {
	total := 0
	for _, a := range t.AssigneeAllocations {
		total += a.Percent
	}
	return total
}

// Clone returns a deep copy.
func (t ProjectTask) Clone() ProjectTask {
	c := t
	c.TechStack = append([]string(nil), t.TechStack...)
	c.Assignees = append([]int(nil), t.Assignees...)
	c.RequiredSkills = append([]SkillID(nil), t.RequiredSkills...)
	c.RecommendedSkills = append([]SkillID(nil), t.RecommendedSkills...)
	c.AssigneeAllocations = append([]TaskAssignment(nil), t.AssigneeAllocations...)
	c.Deliverables = append([]string(nil), t.Deliverables...)
	return c
}

// Roster is a consistent snapshot of employees, projects and tasks.
type Roster struct {
	Employees []Employee            `json:"employees" yaml:"employees"`
	Projects  []Project             `json:"projects" yaml:"projects"`
	Tasks     map[int][]ProjectTask `json:"tasks" yaml:"tasks"`
}
