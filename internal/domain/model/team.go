// Package model contains domain models passed between layers.
package model

// TeamKind identifies the organisational unit that owns a task, skill or project.
type TeamKind string

const (
	TeamAX            TeamKind = "AX"
	TeamAIEngineering TeamKind = "AI_ENGINEERING"
	// TeamCollaboration is only used by projects spanning both teams.
	TeamCollaboration TeamKind = "COLLABORATION"
	// TeamCommon is only used by skills shared by every team.
	TeamCommon TeamKind = "COMMON"
)

// IsValid reports whether k is a known team kind.
func (k TeamKind) IsValid() bool {
	switch k {
	case TeamAX, TeamAIEngineering, TeamCollaboration, TeamCommon:
		return true
	}
	return false
}

// Label returns a human readable label used in prompts and reports.
func (k TeamKind) Label() string {
	switch k {
	case TeamAX:
		return "AX team (PM/planning)"
	case TeamAIEngineering:
		return "AI engineering team"
	case TeamCollaboration:
		return "Collaboration"
	case TeamCommon:
		return "Common"
	}
	return "Unassigned"
}

// Team is a static organisational unit.
type Team struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Kind        TeamKind `json:"kind" yaml:"kind"`
	Description string   `json:"description" yaml:"description"`
}

// ExperienceLevel buckets employees for salary benchmarking.
type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// IsValid reports whether l is a known experience level.
func (l ExperienceLevel) IsValid() bool {
	return l == LevelJunior || l == LevelMid || l == LevelSenior
}

// RiskTier is a coarse overload classification derived from total allocation.
type RiskTier string

const (
	RiskLow      RiskTier = "Low"
	RiskMedium   RiskTier = "Medium"
	RiskHigh     RiskTier = "High"
	RiskCritical RiskTier = "Critical"
)
