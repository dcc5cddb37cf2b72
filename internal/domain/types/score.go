// Package types contains result types shared across the application.
package types

import "github.com/okian/teamboard/internal/domain/model"

// Grade is the letter grade of a total score.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// ProjectScoreDetail is the project-output sub-score.
type ProjectScoreDetail struct {
	Raw               float64 `json:"raw"`
	Weighted          float64 `json:"weighted"`
	TotalProjects     int     `json:"total_projects"`
	CompletedProjects int     `json:"completed_projects"`
	AverageProgress   float64 `json:"average_progress"`
	OnTimeDelivery    float64 `json:"on_time_delivery"`
}

// TaskScoreDetail is the task-output sub-score.
type TaskScoreDetail struct {
	Raw            float64 `json:"raw"`
	Weighted       float64 `json:"weighted"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	TaskDiversity  int     `json:"task_diversity"`
	AvgAllocation  float64 `json:"avg_allocation"`
}

// SkillScoreDetail is the skill-coverage sub-score.
type SkillScoreDetail struct {
	Raw                   float64 `json:"raw"`
	Weighted              float64 `json:"weighted"`
	TotalSkills           int     `json:"total_skills"`
	MatchedSkills         int     `json:"matched_skills"`
	RequiredSkillCoverage float64 `json:"required_skill_coverage"`
	SkillMatchRate        float64 `json:"skill_match_rate"`
}

// PerformanceScore is derived on demand and never persisted.
type PerformanceScore struct {
	EmployeeID   int                `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	TeamKind     model.TeamKind     `json:"team_kind"`
	Period       string             `json:"period"`
	ProjectScore ProjectScoreDetail `json:"project_score"`
	TaskScore    TaskScoreDetail    `json:"task_score"`
	SkillScore   SkillScoreDetail   `json:"skill_score"`
	TotalScore   float64            `json:"total_score"`
	Grade        Grade              `json:"grade"`
}
