package repository_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newSeededStore(t *testing.T) *repository.MemStore {
	t.Helper()
	roster, err := repository.DefaultRoster()
	if err != nil {
		t.Fatalf("default roster: %v", err)
	}
	return repository.NewMemStore(repository.WithRoster(roster))
}

func TestDefaultRoster(t *testing.T) {
	Convey("Given the built-in roster", t, func() {
		roster, err := repository.DefaultRoster()
		So(err, ShouldBeNil)

		Convey("Then it should decode every section", func() {
			So(len(roster.Employees), ShouldEqual, 5)
			So(len(roster.Projects), ShouldEqual, 2)
			So(len(roster.Tasks[101]), ShouldEqual, 3)
			So(len(roster.Tasks[102]), ShouldEqual, 3)
			So(roster.Projects[0].StartDate.String(), ShouldEqual, "2025-09-01")
		})

		Convey("Then derived totals should already be applied", func() {
			So(roster.Employees[0].TotalAllocation, ShouldEqual, 80)
			So(roster.Employees[1].TotalAllocation, ShouldEqual, 100)
			So(roster.Employees[1].Risk, ShouldEqual, model.RiskCritical)
			So(roster.Employees[0].Allocations[0].EmployeeID, ShouldEqual, 1)
		})
	})
}

func TestDecodeRosterErrors(t *testing.T) {
	Convey("Given malformed roster documents", t, func() {
		docs := map[string]string{
			"unknown field":    "employees:\n  - id: 1\n    nickname: x\n",
			"duplicate":        "employees:\n  - id: 1\n  - id: 1\n",
			"missing id":       "employees:\n  - name: x\n",
			"unknown project":  "employees:\n  - id: 1\n    allocations:\n      - project_id: 9\n        percent: 10\n",
			"percent too high": "projects:\n  - id: 9\nemployees:\n  - id: 1\n    allocations:\n      - project_id: 9\n        percent: 120\n",
			"orphan tasks":     "tasks:\n  7:\n    - id: a\n",
			"bad date":         "projects:\n  - id: 9\n    start_date: tomorrow\n",
		}

		Convey("Then each should be rejected as an invalid roster", func() {
			for _, doc := range docs {
				_, err := repository.DecodeRoster(strings.NewReader(doc))
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrInvalidRoster), ShouldBeTrue)
			}
		})

		Convey("Then an empty document should give an empty roster", func() {
			r, err := repository.DecodeRoster(strings.NewReader(""))
			So(err, ShouldBeNil)
			So(r.Employees, ShouldBeEmpty)
			So(r.Tasks, ShouldNotBeNil)
		})
	})
}

func TestMemStoreReads(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		s := newSeededStore(t)

		Convey("When listing employees", func() {
			emps := s.Employees(ctx)

			Convey("Then they should be ordered by id", func() {
				So(len(emps), ShouldEqual, 5)
				for i, e := range emps {
					So(e.ID, ShouldEqual, i+1)
				}
			})

			Convey("Then mutating the result should not affect the store", func() {
				emps[0].Allocations[0].Percent = 99
				e, err := s.Employee(ctx, 1)
				So(err, ShouldBeNil)
				So(e.Allocations[0].Percent, ShouldEqual, 50)
			})
		})

		Convey("When looking up unknown records", func() {
			_, errE := s.Employee(ctx, 42)
			_, errP := s.Project(ctx, 42)
			_, errT := s.Tasks(ctx, 42)

			Convey("Then ErrNotFound should be returned", func() {
				So(errors.Is(errE, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(errP, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(errT, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When taking a snapshot", func() {
			snap := s.Snapshot(ctx)

			Convey("Then it should contain every section", func() {
				So(len(snap.Employees), ShouldEqual, 5)
				So(len(snap.Projects), ShouldEqual, 2)
				So(len(snap.Tasks), ShouldEqual, 2)
			})
		})
	})
}

func TestMemStoreAssignAllocations(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		s := newSeededStore(t)

		Convey("When replacing the staffing of project 101", func() {
			err := s.AssignAllocations(ctx, 101, []model.Allocation{
				{EmployeeID: 3, Percent: 20},
				{EmployeeID: 5, Percent: 50},
				{EmployeeID: 5, Percent: 10, TaskID: "MCP_SERVER"},
			})
			So(err, ShouldBeNil)

			Convey("Then removed members should lose their share", func() {
				kim, _ := s.Employee(ctx, 1)
				So(kim.TotalAllocation, ShouldEqual, 30)
				So(kim.Risk, ShouldEqual, model.RiskLow)
				lee, _ := s.Employee(ctx, 2)
				So(lee.TotalAllocation, ShouldEqual, 60)
				So(lee.Risk, ShouldEqual, model.RiskMedium)
			})

			Convey("Then new members should gain theirs", func() {
				park, _ := s.Employee(ctx, 3)
				So(park.TotalAllocation, ShouldEqual, 90)
				So(park.Risk, ShouldEqual, model.RiskHigh)
				jung, _ := s.Employee(ctx, 5)
				So(jung.TotalAllocation, ShouldEqual, 60)
				So(jung.Allocations[0].ProjectID, ShouldEqual, 101)
			})

			Convey("Then the member list should follow the allocations", func() {
				p, _ := s.Project(ctx, 101)
				So(p.Members, ShouldResemble, []int{3, 5})
			})
		})

		Convey("When an allocation is invalid", func() {
			errUnknown := s.AssignAllocations(ctx, 101, []model.Allocation{{EmployeeID: 77, Percent: 10}})
			errPercent := s.AssignAllocations(ctx, 101, []model.Allocation{{EmployeeID: 1, Percent: 101}})
			errDates := s.AssignAllocations(ctx, 101, []model.Allocation{{
				EmployeeID: 1, Percent: 10,
				StartDate: model.MustDate("2026-02-01"), EndDate: model.MustDate("2026-01-01"),
			}})
			errProject := s.AssignAllocations(ctx, 999, nil)

			Convey("Then nothing should change", func() {
				So(errors.Is(errUnknown, repository.ErrInvalidAllocation), ShouldBeTrue)
				So(errors.Is(errPercent, repository.ErrInvalidAllocation), ShouldBeTrue)
				So(errors.Is(errDates, repository.ErrInvalidAllocation), ShouldBeTrue)
				So(errors.Is(errProject, repository.ErrNotFound), ShouldBeTrue)
				kim, _ := s.Employee(ctx, 1)
				So(kim.TotalAllocation, ShouldEqual, 80)
			})
		})
	})
}

func TestMemStoreRemoveProject(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		s := newSeededStore(t)

		Convey("When removing project 102", func() {
			So(s.RemoveProject(ctx, 102), ShouldBeNil)

			Convey("Then its tasks and allocations should be gone", func() {
				_, err := s.Tasks(ctx, 102)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				lee, _ := s.Employee(ctx, 2)
				So(lee.TotalAllocation, ShouldEqual, 40)
				So(lee.Risk, ShouldEqual, model.RiskLow)
				park, _ := s.Employee(ctx, 3)
				So(park.Allocations, ShouldBeEmpty)
			})

			Convey("Then removing it again should fail", func() {
				So(errors.Is(s.RemoveProject(ctx, 102), repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestMemStoreConcurrency(t *testing.T) {
	Convey("Given concurrent readers and writers", t, func() {
		ctx := context.Background()
		s := newSeededStore(t)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func(pct int) {
				defer wg.Done()
				_ = s.AssignAllocations(ctx, 101, []model.Allocation{{EmployeeID: 1, Percent: pct}})
			}(i)
			go func() {
				defer wg.Done()
				_ = s.Snapshot(ctx)
			}()
		}
		wg.Wait()

		Convey("Then the derived total should match the surviving allocations", func() {
			kim, _ := s.Employee(ctx, 1)
			sum := 0
			for _, a := range kim.Allocations {
				sum += a.Percent
			}
			So(kim.TotalAllocation, ShouldEqual, sum)
			So(len(kim.Allocations), ShouldEqual, 2)
		})
	})
}
