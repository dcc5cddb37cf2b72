package benchmark_test

import (
	"errors"
	"testing"

	"github.com/okian/teamboard/internal/domain/benchmark"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func salary(v int) *int { return &v }

func TestCompare(t *testing.T) {
	Convey("Given the default comparator", t, func() {
		c := benchmark.NewComparator()

		Convey("When comparing a mid AI engineer earning 9000", func() {
			e := model.Employee{ID: 1, TeamKind: model.TeamAIEngineering, ExperienceLevel: model.LevelMid, Salary: salary(9000)}
			res, err := c.Compare(e)

			Convey("Then the result should interpolate inside the band", func() {
				So(err, ShouldBeNil)
				So(res.Benchmark.Median, ShouldEqual, 7500)
				So(res.Percentile, ShouldAlmostEqual, 67.857, 0.001)
				So(res.Deviation, ShouldEqual, 1500)
				So(res.Classification, ShouldEqual, types.Above)
				So(res.Benchmark.Source, ShouldEqual, "LinkedIn Salary Insights 2024")
			})
		})

		Convey("When the team and level have no row", func() {
			e := model.Employee{ID: 2, TeamKind: model.TeamCollaboration, ExperienceLevel: model.LevelMid, Salary: salary(9000)}
			_, err := c.Compare(e)

			Convey("Then it should report a missing benchmark", func() {
				So(errors.Is(err, benchmark.ErrBenchmarkNotFound), ShouldBeTrue)
			})
		})

		Convey("When the experience level is unset", func() {
			e := model.Employee{ID: 3, TeamKind: model.TeamAX, Salary: salary(9000)}
			_, err := c.Compare(e)

			Convey("Then it should report a missing benchmark", func() {
				So(errors.Is(err, benchmark.ErrBenchmarkNotFound), ShouldBeTrue)
			})
		})

		Convey("When the salary is missing", func() {
			e := model.Employee{ID: 4, TeamKind: model.TeamAX, ExperienceLevel: model.LevelJunior}
			_, err := c.Compare(e)

			Convey("Then it should report a missing salary", func() {
				So(errors.Is(err, benchmark.ErrSalaryMissing), ShouldBeTrue)
			})
		})
	})
}

func TestPercentileClamp(t *testing.T) {
	Convey("Given a benchmark row", t, func() {
		b := types.SalaryBenchmark{Median: 7500, P25: 6000, P75: 9500}

		Convey("Then salaries far outside the band should clamp", func() {
			for _, s := range []int{0, 1000, 6000} {
				So(benchmark.Percentile(s, b), ShouldEqual, 25)
			}
			for _, s := range []int{9500, 20000, 1000000} {
				So(benchmark.Percentile(s, b), ShouldEqual, 75)
			}
		})

		Convey("Then every salary should land within [25, 75]", func() {
			for s := 0; s <= 20000; s += 250 {
				p := benchmark.Percentile(s, b)
				So(p, ShouldBeGreaterThanOrEqualTo, 25)
				So(p, ShouldBeLessThanOrEqualTo, 75)
			}
		})

		Convey("Then the midpoint should sit at 50", func() {
			So(benchmark.Percentile(7750, b), ShouldEqual, 50)
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Given deviations around the band", t, func() {
		So(benchmark.Classify(501), ShouldEqual, types.Above)
		So(benchmark.Classify(500), ShouldEqual, types.At)
		So(benchmark.Classify(0), ShouldEqual, types.At)
		So(benchmark.Classify(-500), ShouldEqual, types.At)
		So(benchmark.Classify(-501), ShouldEqual, types.Below)
	})
}

func TestCustomTable(t *testing.T) {
	Convey("Given a comparator with a custom table", t, func() {
		c := benchmark.NewComparator(benchmark.WithTable([]types.SalaryBenchmark{
			{TeamKind: model.TeamCollaboration, ExperienceLevel: model.LevelSenior, Median: 100, P25: 50, P75: 150},
		}))

		Convey("Then only its rows should be found", func() {
			_, err := c.Lookup(model.TeamCollaboration, model.LevelSenior)
			So(err, ShouldBeNil)
			_, err = c.Lookup(model.TeamAX, model.LevelSenior)
			So(errors.Is(err, benchmark.ErrBenchmarkNotFound), ShouldBeTrue)
			So(len(c.Benchmarks()), ShouldEqual, 1)
		})
	})
}
