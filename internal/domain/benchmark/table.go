package benchmark

import (
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
)

const (
	defaultSource      = "LinkedIn Salary Insights 2024"
	defaultLastUpdated = "2024-12-01"
)

// DefaultTable is the built-in market data in local currency units.
var DefaultTable = []types.SalaryBenchmark{
	row(model.TeamAX, model.LevelJunior, 4500, 3800, 5200),
	row(model.TeamAX, model.LevelMid, 6500, 5500, 8000),
	row(model.TeamAX, model.LevelSenior, 8500, 7000, 11000),
	row(model.TeamAIEngineering, model.LevelJunior, 5000, 4200, 6000),
	row(model.TeamAIEngineering, model.LevelMid, 7500, 6000, 9500),
	row(model.TeamAIEngineering, model.LevelSenior, 10000, 8000, 13000),
}

func row(kind model.TeamKind, level model.ExperienceLevel, median, p25, p75 int) types.SalaryBenchmark {
	return types.SalaryBenchmark{
		TeamKind:        kind,
		ExperienceLevel: level,
		Median:          median,
		P25:             p25,
		P75:             p75,
		Source:          defaultSource,
		LastUpdated:     defaultLastUpdated,
	}
}
