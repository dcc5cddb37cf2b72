// Package report renders dashboard data for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

type column struct {
	title string
	width int
}

func cell(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(text)
}

func writeHeader(w io.Writer, title string, cols []column) error {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = cell(c.title, c.width, headerStyle)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), strings.Join(parts, " "))
	return err
}

func gradeStyle(g types.Grade) lipgloss.Style {
	switch g {
	case types.GradeS, types.GradeA:
		return goodStyle
	case types.GradeB, types.GradeC:
		return warnStyle
	default:
		return badStyle
	}
}

func riskStyle(r model.RiskTier) lipgloss.Style {
	switch r {
	case model.RiskLow:
		return goodStyle
	case model.RiskMedium:
		return warnStyle
	default:
		return badStyle
	}
}

func f1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

var scoreCols = []column{
	{"#", 4}, {"ID", 5}, {"Name", 18}, {"Team", 16},
	{"Project", 8}, {"Task", 8}, {"Skill", 8}, {"Total", 7}, {"Grade", 5},
}

// Scores prints a ranked table of performance scores in the given order.
func Scores(w io.Writer, period string, scores []types.PerformanceScore) error {
	title := "Performance"
	if period != "" {
		title += " " + period
	}
	if err := writeHeader(w, title, scoreCols); err != nil {
		return err
	}
	for i, s := range scores {
		row := []string{
			cell(strconv.Itoa(i+1), scoreCols[0].width, mutedStyle),
			cell(strconv.Itoa(s.EmployeeID), scoreCols[1].width, lipgloss.NewStyle()),
			cell(s.EmployeeName, scoreCols[2].width, lipgloss.NewStyle()),
			cell(string(s.TeamKind), scoreCols[3].width, mutedStyle),
			cell(f1(s.ProjectScore.Weighted), scoreCols[4].width, lipgloss.NewStyle()),
			cell(f1(s.TaskScore.Weighted), scoreCols[5].width, lipgloss.NewStyle()),
			cell(f1(s.SkillScore.Weighted), scoreCols[6].width, lipgloss.NewStyle()),
			cell(f1(s.TotalScore), scoreCols[7].width, lipgloss.NewStyle().Bold(true)),
			cell(string(s.Grade), scoreCols[8].width, gradeStyle(s.Grade)),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Score prints the breakdown of a single score.
func Score(w io.Writer, s types.PerformanceScore) error {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s (#%d)", s.EmployeeName, s.EmployeeID)) + " " + mutedStyle.Render(s.Period),
		fmt.Sprintf("  projects  %5s  raw %5s  %d total, %d done, %s%% on time",
			f1(s.ProjectScore.Weighted), f1(s.ProjectScore.Raw),
			s.ProjectScore.TotalProjects, s.ProjectScore.CompletedProjects, f1(s.ProjectScore.OnTimeDelivery)),
		fmt.Sprintf("  tasks     %5s  raw %5s  %d total, %d done, %d types",
			f1(s.TaskScore.Weighted), f1(s.TaskScore.Raw),
			s.TaskScore.TotalTasks, s.TaskScore.CompletedTasks, s.TaskScore.TaskDiversity),
		fmt.Sprintf("  skills    %5s  raw %5s  %d held, %s%% coverage",
			f1(s.SkillScore.Weighted), f1(s.SkillScore.Raw),
			s.SkillScore.TotalSkills, f1(s.SkillScore.RequiredSkillCoverage)),
		fmt.Sprintf("  total     %5s  grade %s", f1(s.TotalScore), gradeStyle(s.Grade).Render(string(s.Grade))),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// Salary prints a salary comparison.
func Salary(w io.Writer, name string, c types.SalaryComparison) error {
	style := warnStyle
	switch c.Classification {
	case types.Above:
		style = goodStyle
	case types.Below:
		style = badStyle
	}
	b := c.Benchmark
	_, err := fmt.Fprintf(w, "%s\n  salary     %d\n  benchmark  %s %s median %d (p25 %d, p75 %d)\n  deviation  %+d\n  percentile %s\n  position   %s\n",
		titleStyle.Render(fmt.Sprintf("%s (#%d)", name, c.EmployeeID)),
		c.Salary, b.TeamKind, b.ExperienceLevel, b.Median, b.P25, b.P75,
		c.Deviation, f1(c.Percentile), style.Render(string(c.Classification)))
	return err
}

var workloadCols = []column{{"ID", 5}, {"Name", 18}, {"Team", 16}, {"Projects", 9}, {"Total", 7}, {"Risk", 9}}

// Workload prints allocation totals and risk tiers.
func Workload(w io.Writer, employees []model.Employee) error {
	if err := writeHeader(w, "Workload", workloadCols); err != nil {
		return err
	}
	for _, e := range employees {
		row := []string{
			cell(strconv.Itoa(e.ID), workloadCols[0].width, lipgloss.NewStyle()),
			cell(e.Name, workloadCols[1].width, lipgloss.NewStyle()),
			cell(string(e.TeamKind), workloadCols[2].width, mutedStyle),
			cell(strconv.Itoa(len(e.Allocations)), workloadCols[3].width, lipgloss.NewStyle()),
			cell(strconv.Itoa(e.TotalAllocation)+"%", workloadCols[4].width, lipgloss.NewStyle().Bold(true)),
			cell(string(e.Risk), workloadCols[5].width, riskStyle(e.Risk)),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// TaskSkills prints the skills of one task category.
func TaskSkills(w io.Writer, task model.TaskDefinition, res catalog.TaskSkills) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(task.Name), mutedStyle.Render(fmt.Sprintf("[%s, %s]", task.Team, task.Area)))
	if task.Description != "" {
		fmt.Fprintf(&b, "  %s\n", task.Description)
	}
	writeSkills(&b, "required", goodStyle, res.Required)
	writeSkills(&b, "recommended", warnStyle, res.Recommended)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSkills(b *strings.Builder, label string, style lipgloss.Style, skills []model.SkillDefinition) {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	if len(names) == 0 {
		names = []string{"-"}
	}
	fmt.Fprintf(b, "  %s %s\n", style.Render(label), strings.Join(names, ", "))
}

// Tasks prints a one-line-per-task listing of the catalog.
func Tasks(w io.Writer, tasks []model.TaskDefinition) error {
	cols := []column{{"Task", 26}, {"Team", 16}, {"Area", 14}, {"Req", 4}, {"Rec", 4}}
	if err := writeHeader(w, "Task catalog", cols); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{
			cell(string(t.ID), cols[0].width, lipgloss.NewStyle()),
			cell(string(t.Team), cols[1].width, mutedStyle),
			cell(string(t.Area), cols[2].width, mutedStyle),
			cell(strconv.Itoa(len(t.RequiredSkills)), cols[3].width, goodStyle),
			cell(strconv.Itoa(len(t.RecommendedSkills)), cols[4].width, warnStyle),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Lines prints a titled list of key/value lines, in order.
func Lines(w io.Writer, title string, kv ...string) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, "  %s %s\n", cell(kv[i], 14, mutedStyle), kv[i+1])
	}
	_, err := io.WriteString(w, b.String())
	return err
}
