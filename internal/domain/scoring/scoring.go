// Package scoring computes weighted performance scores from an employee's
// projects, tasks and skills.
package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
)

const maxScoreValue = 100

// Grade boundaries, closed on the lower edge.
const (
	gradeS = 90
	gradeA = 80
	gradeB = 70
	gradeC = 60
)

// Weights of the three sub-scores.
type Weights struct {
	Project float64 `json:"project"`
	Task    float64 `json:"task"`
	Skill   float64 `json:"skill"`
}

// DefaultWeights are 0.40 / 0.35 / 0.25.
var DefaultWeights = Weights{Project: 0.40, Task: 0.35, Skill: 0.25}

// Valid reports whether the weights are non-negative and sum to 1.
func (w Weights) Valid() bool {
	if w.Project < 0 || w.Task < 0 || w.Skill < 0 {
		return false
	}
	return math.Abs(w.Project+w.Task+w.Skill-1) < 1e-9
}

// Engine scores employees. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	now     func() time.Time
	weights Weights
}

// NewEngine creates an engine with default weights and the wall clock.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:     time.Now,
		weights: DefaultWeights,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weights returns the configured weights.
func (e *Engine) Weights() Weights { return e.weights }

// Score computes the performance score of emp for a period label. It never
// fails: an employee with no projects, tasks or skills gets low but defined
// sub-scores.
func (e *Engine) Score(emp model.Employee, projects []model.Project, tasks map[int][]model.ProjectTask, period string) types.PerformanceScore {
	ps := e.projectScore(emp, projects)
	employeeTasks := tasksOf(emp.ID, tasks)
	ts := taskScore(emp, employeeTasks)
	ss := skillScore(emp, employeeTasks)

	wp := ps.Raw * e.weights.Project
	wt := ts.Raw * e.weights.Task
	ws := ss.Raw * e.weights.Skill
	total := round1(wp + wt + ws)

	ps.Raw, ps.Weighted = round1(ps.Raw), round1(wp)
	ts.Raw, ts.Weighted = round1(ts.Raw), round1(wt)
	ss.Raw, ss.Weighted = round1(ss.Raw), round1(ws)

	return types.PerformanceScore{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		TeamKind:     emp.TeamKind,
		Period:       period,
		ProjectScore: ps,
		TaskScore:    ts,
		SkillScore:   ss,
		TotalScore:   total,
		Grade:        GradeOf(total),
	}
}

// ScoreAll scores every employee of the roster, highest total first.
func (e *Engine) ScoreAll(r model.Roster, period string) []types.PerformanceScore {
	out := make([]types.PerformanceScore, 0, len(r.Employees))
	for _, emp := range r.Employees {
		out = append(out, e.Score(emp, r.Projects, r.Tasks, period))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

// GradeOf maps a total score to its letter grade.
func GradeOf(score float64) types.Grade {
	switch {
	case score >= gradeS:
		return types.GradeS
	case score >= gradeA:
		return types.GradeA
	case score >= gradeB:
		return types.GradeB
	case score >= gradeC:
		return types.GradeC
	default:
		return types.GradeD
	}
}

// projectScore: a project counts as on time when its status is OnTrack or
// today is not past its end date.
func (e *Engine) projectScore(emp model.Employee, projects []model.Project) types.ProjectScoreDetail {
	today := model.DateOf(e.now())
	var total, completed, onTime, progress int
	for i := range projects {
		p := &projects[i]
		if !p.HasMember(emp.ID) {
			continue
		}
		total++
		progress += p.Progress
		if p.Progress == 100 {
			completed++
		}
		if p.Status == model.StatusOnTrack || (!p.EndDate.IsZero() && !today.After(p.EndDate)) {
			onTime++
		}
	}

	var avgProgress, onTimePct float64
	if total > 0 {
		avgProgress = float64(progress) / float64(total)
		onTimePct = float64(onTime) / float64(total) * 100
	}
	raw := float64(completed)/float64(max(total, 1))*30 + avgProgress*0.4 + onTimePct*0.3

	return types.ProjectScoreDetail{
		Raw:               capScore(raw),
		TotalProjects:     total,
		CompletedProjects: completed,
		AverageProgress:   round1(avgProgress),
		OnTimeDelivery:    round1(onTimePct),
	}
}

func taskScore(emp model.Employee, employeeTasks []model.ProjectTask) types.TaskScoreDetail {
	completed := 0
	categories := make(map[model.TaskID]struct{})
	for _, t := range employeeTasks {
		if t.Progress == 100 {
			completed++
		}
		categories[t.TaskType] = struct{}{}
	}

	// Mean over the employee's own allocations, not task-level shares.
	var avgAlloc float64
	if n := len(emp.Allocations); n > 0 {
		sum := 0
		for _, a := range emp.Allocations {
			sum += a.Percent
		}
		avgAlloc = float64(sum) / float64(n)
	}

	total := len(employeeTasks)
	raw := float64(completed)/float64(max(total, 1))*100*0.4 +
		math.Min(float64(len(categories))*15, 30) +
		math.Min(avgAlloc, 100)*0.3

	return types.TaskScoreDetail{
		Raw:            capScore(raw),
		TotalTasks:     total,
		CompletedTasks: completed,
		TaskDiversity:  len(categories),
		AvgAllocation:  round1(avgAlloc),
	}
}

// skillScore treats an empty required-skill union as fully covered.
func skillScore(emp model.Employee, employeeTasks []model.ProjectTask) types.SkillScoreDetail {
	owned := make(map[model.SkillID]struct{}, len(emp.SkillSet))
	for _, s := range emp.SkillSet {
		owned[s] = struct{}{}
	}
	required := make(map[model.SkillID]struct{})
	for _, t := range employeeTasks {
		for _, s := range t.RequiredSkills {
			required[s] = struct{}{}
		}
	}
	matched := 0
	for s := range owned {
		if _, ok := required[s]; ok {
			matched++
		}
	}

	totalSkills := len(owned)
	coverage := 100.0
	if len(required) > 0 {
		coverage = float64(matched) / float64(len(required)) * 100
	}
	var matchRate float64
	if totalSkills > 0 {
		matchRate = float64(matched) / float64(totalSkills) * 100
	}
	raw := math.Min(float64(totalSkills)*5, 30) + coverage*0.4 + matchRate*0.3

	return types.SkillScoreDetail{
		Raw:                   capScore(raw),
		TotalSkills:           totalSkills,
		MatchedSkills:         matched,
		RequiredSkillCoverage: round1(coverage),
		SkillMatchRate:        round1(matchRate),
	}
}

// tasksOf flattens the tasks of every project that list employeeID as assignee.
func tasksOf(employeeID int, tasks map[int][]model.ProjectTask) []model.ProjectTask {
	var out []model.ProjectTask
	for _, list := range tasks {
		for i := range list {
			if list[i].HasAssignee(employeeID) {
				out = append(out, list[i])
			}
		}
	}
	return out
}

func capScore(v float64) float64 {
	return math.Max(0, math.Min(maxScoreValue, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
