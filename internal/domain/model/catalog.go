package model

// TaskID identifies a task category in the static catalog.
type TaskID string

// SkillID identifies a skill in the static catalog.
type SkillID string

// Area groups task definitions by field of work.
type Area string

const (
	AreaPMPlanning   Area = "PM_PLANNING"
	AreaBackend      Area = "BACKEND"
	AreaFrontend     Area = "FRONTEND"
	AreaDataPipeline Area = "DATA_PIPELINE"
	AreaDevOps       Area = "DEVOPS"
	AreaDatabase     Area = "DATABASE"
	AreaAIAgent      Area = "AI_AGENT"
	AreaDataPlanning Area = "DATA_PLANNING"
)

// SkillCategory tags a skill definition.
type SkillCategory string

const (
	CategoryManagement     SkillCategory = "MANAGEMENT"
	CategoryDomain         SkillCategory = "DOMAIN"
	CategoryDevelopment    SkillCategory = "DEVELOPMENT"
	CategoryFramework      SkillCategory = "FRAMEWORK"
	CategoryInfrastructure SkillCategory = "INFRASTRUCTURE"
	CategoryData           SkillCategory = "DATA"
	CategoryAIML           SkillCategory = "AI_ML"
	CategoryCollaboration  SkillCategory = "COLLABORATION"
)

// Requirement tags a task/skill pair in the matrix.
type Requirement string

const (
	Required    Requirement = "REQUIRED"
	Recommended Requirement = "RECOMMENDED"
)

// TaskDefinition describes a category of work and its skill requirements.
// Required and recommended sets are disjoint by convention only.
type TaskDefinition struct {
	ID                TaskID    `json:"id"`
	Name              string    `json:"name"`
	Team              TeamKind  `json:"team"`
	Area              Area      `json:"area"`
	Description       string    `json:"description"`
	Deliverables      []string  `json:"deliverables"`
	RequiredSkills    []SkillID `json:"required_skills"`
	RecommendedSkills []SkillID `json:"recommended_skills"`
}

// SkillDefinition is a static catalog entry for a skill.
type SkillDefinition struct {
	ID          SkillID       `json:"id"`
	Name        string        `json:"name"`
	Team        TeamKind      `json:"team"`
	Category    SkillCategory `json:"category"`
	Description string        `json:"description"`
}

// MatrixEntry is one (task, skill) row of the flattened catalog.
type MatrixEntry struct {
	TaskID      TaskID      `json:"task_id"`
	SkillID     SkillID     `json:"skill_id"`
	Requirement Requirement `json:"requirement"`
}
