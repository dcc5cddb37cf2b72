// Package benchmark positions employee salaries against market benchmarks.
package benchmark

import (
	"fmt"

	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
)

// classificationBand is the absolute deviation from the median, in currency
// units, beyond which a salary counts as above or below market.
const classificationBand = 500

type key struct {
	kind  model.TeamKind
	level model.ExperienceLevel
}

// Option applies a configuration option to the Comparator.
type Option func(*Comparator)

// WithTable replaces the benchmark table. Later rows win on duplicate keys.
func WithTable(rows []types.SalaryBenchmark) Option {
	return func(c *Comparator) {
		c.rows = append([]types.SalaryBenchmark(nil), rows...)
	}
}

// Comparator looks up benchmark rows by exact (team kind, experience level).
type Comparator struct {
	rows  []types.SalaryBenchmark
	index map[key]types.SalaryBenchmark
}

// NewComparator creates a comparator over DefaultTable unless overridden.
func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{rows: DefaultTable}
	for _, opt := range opts {
		opt(c)
	}
	c.index = make(map[key]types.SalaryBenchmark, len(c.rows))
	for _, r := range c.rows {
		c.index[key{r.TeamKind, r.ExperienceLevel}] = r
	}
	return c
}

// Benchmarks returns a copy of the table.
func (c *Comparator) Benchmarks() []types.SalaryBenchmark {
	return append([]types.SalaryBenchmark(nil), c.rows...)
}

// Lookup returns the row for an exact key.
func (c *Comparator) Lookup(kind model.TeamKind, level model.ExperienceLevel) (types.SalaryBenchmark, error) {
	r, ok := c.index[key{kind, level}]
	if !ok {
		return types.SalaryBenchmark{}, fmt.Errorf("%w: team %q level %q", ErrBenchmarkNotFound, kind, level)
	}
	return r, nil
}

// Compare positions e's salary against its benchmark row.
func (c *Comparator) Compare(e model.Employee) (types.SalaryComparison, error) {
	b, err := c.Lookup(e.TeamKind, e.ExperienceLevel)
	if err != nil {
		return types.SalaryComparison{}, err
	}
	if e.Salary == nil {
		return types.SalaryComparison{}, fmt.Errorf("%w: employee %d", ErrSalaryMissing, e.ID)
	}
	salary := *e.Salary
	deviation := salary - b.Median
	return types.SalaryComparison{
		EmployeeID:     e.ID,
		Salary:         salary,
		Benchmark:      b,
		Percentile:     Percentile(salary, b),
		Deviation:      deviation,
		Classification: Classify(deviation),
	}, nil
}

// Percentile interpolates linearly between p25 and p75 and clamps to [25, 75].
func Percentile(salary int, b types.SalaryBenchmark) float64 {
	switch {
	case salary <= b.P25:
		return 25
	case salary >= b.P75:
		return 75
	}
	return 25 + float64(salary-b.P25)/float64(b.P75-b.P25)*50
}

// Classify maps a deviation from the median to above, at or below.
func Classify(deviation int) types.Classification {
	switch {
	case deviation > classificationBand:
		return types.Above
	case deviation < -classificationBand:
		return types.Below
	default:
		return types.At
	}
}
