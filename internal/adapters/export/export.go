// Package export writes the roster as Excel-friendly CSV files.
//
// Each file starts with a UTF-8 byte order mark and list-valued columns are
// joined with "; " inside one quoted cell.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
)

const (
	bom       = "\uFEFF"
	listSep   = "; "
	dirPerm   = 0o755
	filePerm  = 0o644
	dateStamp = "2006-01-02"
)

var (
	employeeHeader = []string{"ID", "Name", "Role", "TeamType", "ExperienceLevel", "Salary", "Skills"}
	projectHeader  = []string{"ID", "Name", "Phase", "TeamType", "Members", "StartDate", "EndDate", "Category", "Difficulty", "Description"}
	taskHeader     = []string{"ID", "ProjectID", "Name", "TaskType", "TeamOwner", "Assignees", "StartDate", "EndDate", "Progress", "AllocationPercent"}
)

// Files lists the paths written by Export.
type Files struct {
	Employees string `json:"employees"`
	Projects  string `json:"projects"`
	Tasks     string `json:"tasks"`
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock sets the clock used for the file name date stamp.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// Exporter writes roster CSV files.
type Exporter struct {
	now func() time.Time
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes employees_{date}.csv, projects_{date}.csv and tasks_{date}.csv
// into dir, creating it when needed.
func (e *Exporter) Export(ctx context.Context, dir string, r model.Roster) (Files, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return Files{}, fmt.Errorf("create export dir: %w", err)
	}
	stamp := e.now().Format(dateStamp)
	files := Files{
		Employees: filepath.Join(dir, "employees_"+stamp+".csv"),
		Projects:  filepath.Join(dir, "projects_"+stamp+".csv"),
		Tasks:     filepath.Join(dir, "tasks_"+stamp+".csv"),
	}

	writers := []struct {
		path  string
		write func(io.Writer) error
	}{
		{files.Employees, func(w io.Writer) error { return WriteEmployees(w, r.Employees) }},
		{files.Projects, func(w io.Writer) error { return WriteProjects(w, r.Projects) }},
		{files.Tasks, func(w io.Writer) error { return WriteTasks(w, r) }},
	}
	for _, wr := range writers {
		if err := ctx.Err(); err != nil {
			return Files{}, err
		}
		if err := writeFile(wr.path, wr.write); err != nil {
			return Files{}, err
		}
	}
	return files, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteEmployees writes the employee sheet.
func WriteEmployees(w io.Writer, employees []model.Employee) error {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		salary := ""
		if e.Salary != nil {
			salary = strconv.Itoa(*e.Salary)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID), e.Name, e.Role, string(e.TeamKind), string(e.ExperienceLevel), salary,
			strings.Join(skillLabels(e), listSep),
		})
	}
	return writeCSV(w, employeeHeader, rows)
}

func skillLabels(e model.Employee) []string {
	if len(e.SkillSet) == 0 {
		return e.Skills
	}
	out := make([]string, 0, len(e.SkillSet))
	for _, s := range e.SkillSet {
		out = append(out, catalog.SkillName(s))
	}
	return out
}

// WriteProjects writes the project sheet.
func WriteProjects(w io.Writer, projects []model.Project) error {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Phase, string(p.TeamKind), joinInts(p.Members),
			p.StartDate.String(), p.EndDate.String(), p.Category, p.Difficulty, p.Description,
		})
	}
	return writeCSV(w, projectHeader, rows)
}

// WriteTasks writes the task sheet, ordered by project ID then task order.
// TeamOwner comes from the catalog entry of the task type, falling back to
// the project's team.
func WriteTasks(w io.Writer, r model.Roster) error {
	projectTeam := make(map[int]model.TeamKind, len(r.Projects))
	for _, p := range r.Projects {
		projectTeam[p.ID] = p.TeamKind
	}
	pids := make([]int, 0, len(r.Tasks))
	for pid := range r.Tasks {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	rows := [][]string{}
	for _, pid := range pids {
		for _, t := range r.Tasks[pid] {
			owner := projectTeam[pid]
			if def, ok := catalog.Task(t.TaskType); ok {
				owner = def.Team
			}
			rows = append(rows, []string{
				t.ID, strconv.Itoa(pid), t.Name, string(t.TaskType), string(owner), joinInts(t.Assignees),
				t.StartDate.String(), t.EndDate.String(), strconv.Itoa(t.Progress), strconv.Itoa(t.AllocationPercent()),
			})
		}
	}
	return writeCSV(w, taskHeader, rows)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, listSep)
}

// Summary counts the roster the way the export report prints it.
type Summary struct {
	Employees       int                    `json:"employees"`
	EmployeesByTeam map[model.TeamKind]int `json:"employees_by_team"`
	Projects        int                    `json:"projects"`
	Collaboration   int                    `json:"collaboration_projects"`
	Tasks           int                    `json:"tasks"`
	TasksByProject  map[int]int            `json:"tasks_by_project"`
}

// Summarize counts employees per team, collaboration projects and tasks per
// project.
func Summarize(r model.Roster) Summary {
	s := Summary{
		Employees:       len(r.Employees),
		EmployeesByTeam: map[model.TeamKind]int{},
		Projects:        len(r.Projects),
		TasksByProject:  map[int]int{},
	}
	for _, e := range r.Employees {
		s.EmployeesByTeam[e.TeamKind]++
	}
	for _, p := range r.Projects {
		if p.TeamKind == model.TeamCollaboration {
			s.Collaboration++
		}
	}
	for pid, ts := range r.Tasks {
		s.TasksByProject[pid] = len(ts)
		s.Tasks += len(ts)
	}
	return s
}
