package types

import "github.com/okian/teamboard/internal/domain/model"

// SalaryBenchmark is a static market-salary row keyed by team and level.
type SalaryBenchmark struct {
	TeamKind        model.TeamKind        `json:"team_kind"`
	ExperienceLevel model.ExperienceLevel `json:"experience_level"`
	Median          int                   `json:"median"`
	P25             int                   `json:"p25"`
	P75             int                   `json:"p75"`
	Source          string                `json:"source"`
	LastUpdated     string                `json:"last_updated"`
}

// Classification places a salary relative to the benchmark median.
type Classification string

const (
	Above Classification = "above"
	At    Classification = "at"
	Below Classification = "below"
)

// SalaryComparison positions one employee's salary against its benchmark.
// Percentile is a two-segment interpolation clamped to [25, 75], not a true
// statistical percentile.
type SalaryComparison struct {
	EmployeeID     int             `json:"employee_id"`
	Salary         int             `json:"salary"`
	Benchmark      SalaryBenchmark `json:"benchmark"`
	Percentile     float64         `json:"percentile"`
	Deviation      int             `json:"deviation"`
	Classification Classification  `json:"classification"`
}
