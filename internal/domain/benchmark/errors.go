package benchmark

import "errors"

var (
	// ErrBenchmarkNotFound is returned when no row matches the employee's team and level.
	ErrBenchmarkNotFound = errors.New("benchmark not found")
	// ErrSalaryMissing is returned when the employee has no salary on record.
	ErrSalaryMissing = errors.New("salary missing")
)
