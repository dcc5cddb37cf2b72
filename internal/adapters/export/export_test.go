package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/teamboard/internal/adapters/export"
	"github.com/okian/teamboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func salary(v int) *int { return &v }

func sampleRoster() model.Roster {
	return model.Roster{
		Employees: []model.Employee{
			{
				ID: 1, Name: "Kim", Role: "AI Engineer", TeamKind: model.TeamAIEngineering,
				ExperienceLevel: model.LevelSenior, Salary: salary(11500),
				SkillSet: []model.SkillID{"PYTHON", "SQL"},
			},
			{ID: 2, Name: "Lee, Seoyeon", Role: "PM", TeamKind: model.TeamAX, Skills: []string{"Planning", "PRD"}},
		},
		Projects: []model.Project{
			{
				ID: 101, Name: "Chatbot", Phase: "Development", TeamKind: model.TeamCollaboration,
				Members: []int{1, 2}, StartDate: model.MustDate("2025-09-01"), EndDate: model.MustDate("2026-02-28"),
				Category: "AI", Difficulty: "High", Description: `Says "hello"`,
			},
			{ID: 102, Name: "Dashboard", TeamKind: model.TeamAX},
		},
		Tasks: map[int][]model.ProjectTask{
			102: {{ID: "t-2", Name: "KPI", TaskType: "NOT_IN_CATALOG", Assignees: []int{2}}},
			101: {{
				ID: "t-1", Name: "RAG", TaskType: "RAG_SYSTEM", Assignees: []int{1}, Progress: 80,
				AssigneeAllocations: []model.TaskAssignment{{EmployeeID: 1, Percent: 30}, {EmployeeID: 2, Percent: 20}},
			}},
		},
	}
}

func readCSV(b []byte) [][]string {
	So(strings.HasPrefix(string(b), "\uFEFF"), ShouldBeTrue)
	rows, err := csv.NewReader(bytes.NewReader(b[len("\uFEFF"):])).ReadAll()
	So(err, ShouldBeNil)
	return rows
}

func TestWriters(t *testing.T) {
	Convey("Given a roster", t, func() {
		r := sampleRoster()

		Convey("When writing employees", func() {
			var buf bytes.Buffer
			So(export.WriteEmployees(&buf, r.Employees), ShouldBeNil)
			rows := readCSV(buf.Bytes())

			Convey("Then skills should be joined and commas survive quoting", func() {
				So(rows[0], ShouldResemble, []string{"ID", "Name", "Role", "TeamType", "ExperienceLevel", "Salary", "Skills"})
				So(rows[1][5], ShouldEqual, "11500")
				So(rows[1][6], ShouldEqual, "Python; SQL")
				So(rows[2][1], ShouldEqual, "Lee, Seoyeon")
				So(rows[2][5], ShouldEqual, "")
				So(rows[2][6], ShouldEqual, "Planning; PRD")
			})
		})

		Convey("When writing projects", func() {
			var buf bytes.Buffer
			So(export.WriteProjects(&buf, r.Projects), ShouldBeNil)
			rows := readCSV(buf.Bytes())

			Convey("Then members and dates should be rendered", func() {
				So(len(rows), ShouldEqual, 3)
				So(rows[1][4], ShouldEqual, "1; 2")
				So(rows[1][5], ShouldEqual, "2025-09-01")
				So(rows[1][9], ShouldEqual, `Says "hello"`)
				So(rows[2][5], ShouldEqual, "")
			})
		})

		Convey("When writing tasks", func() {
			var buf bytes.Buffer
			So(export.WriteTasks(&buf, r), ShouldBeNil)
			rows := readCSV(buf.Bytes())

			Convey("Then rows should be ordered by project with owner and allocation", func() {
				So(len(rows), ShouldEqual, 3)
				So(rows[1][0], ShouldEqual, "t-1")
				So(rows[1][4], ShouldEqual, "AI_ENGINEERING")
				So(rows[1][9], ShouldEqual, "50")
				So(rows[2][0], ShouldEqual, "t-2")
				So(rows[2][4], ShouldEqual, "AX")
			})
		})
	})
}

func TestExport(t *testing.T) {
	Convey("Given an exporter with a fixed clock", t, func() {
		dir := filepath.Join(t.TempDir(), "exports")
		e := export.New(export.WithClock(func() time.Time {
			return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		}))

		Convey("When exporting", func() {
			files, err := e.Export(context.Background(), dir, sampleRoster())

			Convey("Then three dated files should exist", func() {
				So(err, ShouldBeNil)
				So(filepath.Base(files.Employees), ShouldEqual, "employees_2026-03-01.csv")
				So(filepath.Base(files.Projects), ShouldEqual, "projects_2026-03-01.csv")
				So(filepath.Base(files.Tasks), ShouldEqual, "tasks_2026-03-01.csv")
				for _, p := range []string{files.Employees, files.Projects, files.Tasks} {
					b, err := os.ReadFile(p)
					So(err, ShouldBeNil)
					So(len(readCSV(b)), ShouldBeGreaterThan, 1)
				}
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := e.Export(ctx, dir, sampleRoster())

			Convey("Then it should stop", func() {
				So(err, ShouldEqual, context.Canceled)
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a roster summary", t, func() {
		s := export.Summarize(sampleRoster())

		So(s.Employees, ShouldEqual, 2)
		So(s.EmployeesByTeam[model.TeamAX], ShouldEqual, 1)
		So(s.EmployeesByTeam[model.TeamAIEngineering], ShouldEqual, 1)
		So(s.Projects, ShouldEqual, 2)
		So(s.Collaboration, ShouldEqual, 1)
		So(s.Tasks, ShouldEqual, 2)
		So(s.TasksByProject[101], ShouldEqual, 1)
	})
}
