package types

// ProposedMember is one employee in a staffing proposal.
type ProposedMember struct {
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Role         string `json:"role"`
	Reason       string `json:"reason"`
}

// WorkModule is a unit of work suggested by a staffing proposal.
type WorkModule struct {
	Name           string   `json:"name"`
	TechStack      []string `json:"techStack"`
	EstimatedHours int      `json:"estimatedHours"`
	AssigneeIDs    []int    `json:"assigneeIds"`
}

// TeamProposal is the result of a staffing request. A non-empty Error marks
// a failed request; Summary then carries a readable explanation.
type TeamProposal struct {
	ID          string           `json:"id,omitempty"`
	ProjectName string           `json:"projectName"`
	Team        []ProposedMember `json:"team"`
	WorkModules []WorkModule     `json:"workModules"`
	Summary     string           `json:"summary"`
	Error       string           `json:"error,omitempty"`
}

// Failed reports whether the proposal carries an error code.
func (p TeamProposal) Failed() bool { return p.Error != "" }
