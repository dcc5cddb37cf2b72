package allocation_test

import (
	"testing"

	"github.com/okian/teamboard/internal/domain/allocation"
	"github.com/okian/teamboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTotalAndTier(t *testing.T) {
	Convey("Given an employee with two heavy allocations", t, func() {
		e := model.Employee{
			ID: 1,
			Allocations: []model.Allocation{
				{EmployeeID: 1, ProjectID: 101, Percent: 60},
				{EmployeeID: 1, ProjectID: 102, Percent: 80},
			},
		}

		Convey("When applying the aggregator", func() {
			allocation.Apply(&e)

			Convey("Then the total should exceed 100 and be critical", func() {
				So(e.TotalAllocation, ShouldEqual, 140)
				So(e.Risk, ShouldEqual, model.RiskCritical)
			})
		})
	})

	Convey("Given the risk tier boundaries", t, func() {
		cases := map[int]model.RiskTier{
			0:   model.RiskLow,
			59:  model.RiskLow,
			60:  model.RiskMedium,
			84:  model.RiskMedium,
			85:  model.RiskHigh,
			99:  model.RiskHigh,
			100: model.RiskCritical,
			340: model.RiskCritical,
		}

		Convey("Then every total should map to its tier", func() {
			for total, want := range cases {
				So(allocation.Tier(total), ShouldEqual, want)
			}
		})
	})

	Convey("Given lapsed and future allocations", t, func() {
		allocs := []model.Allocation{
			{Percent: 30, StartDate: model.MustDate("2024-01-01"), EndDate: model.MustDate("2024-06-30")},
			{Percent: 50, StartDate: model.MustDate("2026-01-01"), EndDate: model.MustDate("2026-06-30")},
			{Percent: 20},
		}

		Convey("Then they should all count towards the total", func() {
			So(allocation.Total(allocs), ShouldEqual, 100)
		})

		Convey("Then ActiveOn should only report the window containing the day", func() {
			active := allocation.ActiveOn(allocs, model.MustDate("2026-03-01"))
			So(len(active), ShouldEqual, 2)
			So(active[0].Percent, ShouldEqual, 50)
			So(active[1].Percent, ShouldEqual, 20)
		})
	})
}

func TestAddRemove(t *testing.T) {
	Convey("Given an employee with one allocation", t, func() {
		e := model.Employee{ID: 7, Allocations: []model.Allocation{{ProjectID: 1, Percent: 40}}}
		allocation.Apply(&e)

		Convey("When adding allocations", func() {
			before := e.TotalAllocation
			allocation.Add(&e, model.Allocation{ProjectID: 2, Percent: 25})

			Convey("Then the total should grow by exactly that percentage", func() {
				So(e.TotalAllocation, ShouldEqual, before+25)
				So(e.Allocations[1].EmployeeID, ShouldEqual, 7)
				So(e.Risk, ShouldEqual, model.RiskMedium)
			})

			Convey("And removing it should shrink the total by the same amount", func() {
				n := allocation.Remove(&e, allocation.ForProject(2))
				So(n, ShouldEqual, 1)
				So(e.TotalAllocation, ShouldEqual, before)
				So(e.Risk, ShouldEqual, model.RiskLow)
			})
		})

		Convey("When removing a project the employee is not on", func() {
			n := allocation.Remove(&e, allocation.ForProject(99))

			Convey("Then nothing should change", func() {
				So(n, ShouldEqual, 0)
				So(e.TotalAllocation, ShouldEqual, 40)
			})
		})
	})
}
