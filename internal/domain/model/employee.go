package model

// Allocation is a time-boxed commitment of part of an employee's capacity
// to one project, optionally to one task of it. Allocations are replaced
// wholesale when staffing changes and never edited in place.
type Allocation struct {
	EmployeeID int    `json:"employee_id" yaml:"employee_id"`
	ProjectID  int    `json:"project_id" yaml:"project_id"`
	TaskID     TaskID `json:"task_id,omitempty" yaml:"task_id"`

	// Percent is 0-100 per allocation; the per-employee sum is unbounded.
	Percent   int  `json:"percent" yaml:"percent"`
	StartDate Date `json:"start_date" yaml:"start_date"`
	EndDate   Date `json:"end_date" yaml:"end_date"`
}

// Employee is a member of staff with skills and allocations.
type Employee struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Role         string `json:"role" yaml:"role"`
	Status       string `json:"status" yaml:"status"`
	StatusDetail string `json:"status_detail" yaml:"status_detail"`

	// Skills is the legacy free-text list kept for display.
	Skills   []string  `json:"skills" yaml:"skills"`
	TeamID   string    `json:"team_id" yaml:"team_id"`
	TeamKind TeamKind  `json:"team_kind" yaml:"team_kind"`
	SkillSet []SkillID `json:"skill_set" yaml:"skill_set"`

	Allocations []Allocation `json:"allocations" yaml:"allocations"`

	// TotalAllocation and Risk are derived from Allocations; see allocation.Apply.
	// TotalAllocation is deliberately not capped at 100.
	TotalAllocation int      `json:"total_allocation" yaml:"-"`
	Risk            RiskTier `json:"risk" yaml:"-"`

	Salary          *int            `json:"salary,omitempty" yaml:"salary"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty" yaml:"experience_level"`
}

// HasSkill reports whether id is in the employee's typed skill set.
func (e *Employee) HasSkill(id SkillID) bool {
	for _, s := range e.SkillSet {
		if s == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate repository state.
func (e Employee) Clone() Employee {
	c := e
	c.Skills = append([]string(nil), e.Skills...)
	c.SkillSet = append([]SkillID(nil), e.SkillSet...)
	c.Allocations = append([]Allocation(nil), e.Allocations...)
	if e.Salary != nil {
		s := *e.Salary
		c.Salary = &s
	}
	return c
}
