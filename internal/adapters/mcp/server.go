// Package mcp exposes the dashboard services as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
)

// Server identity reported to MCP clients.
const (
	Name    = "teamboard"
	Version = "1.0.0"
)

// Backend is the slice of the service the tools call into.
type Backend interface {
	Employee(ctx context.Context, id int) (model.Employee, error)
	ScoreEmployee(ctx context.Context, id int, period string) (types.PerformanceScore, error)
	CompareSalary(ctx context.Context, id int) (types.SalaryComparison, error)
	SkillsForTask(ctx context.Context, id model.TaskID) (catalog.TaskSkills, bool)
	TasksForSkill(ctx context.Context, id model.SkillID) (catalog.SkillTasks, bool)
	ProposeTeam(ctx context.Context, request string) types.TeamProposal
}

// Server wraps an MCPServer bound to a Backend.
type Server struct {
	mcp     *mcpserver.MCPServer
	backend Backend
	logger  logger.Logger
}

// NewServer registers every tool. A nil backend makes each call return a
// tool error.
func NewServer(backend Backend) *Server {
	s := &Server{backend: backend, logger: logger.Get().Named("mcp")}

	srv := mcpserver.NewMCPServer(Name, Version, mcpserver.WithToolCapabilities(true))
	srv.AddTool(scoreEmployeeTool(), s.HandleScoreEmployee)
	srv.AddTool(compareSalaryTool(), s.HandleCompareSalary)
	srv.AddTool(skillsForTaskTool(), s.HandleSkillsForTask)
	srv.AddTool(tasksForSkillTool(), s.HandleTasksForSkill)
	srv.AddTool(employeeWorkloadTool(), s.HandleEmployeeWorkload)
	srv.AddTool(proposeTeamTool(), s.HandleProposeTeam)

	s.mcp = srv
	return s
}

// MCPServer returns the underlying server for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

func employeeID(req mcpgo.CallToolRequest) (int, *mcpgo.CallToolResult) {
	id := req.GetInt("employee_id", 0)
	if id < 1 {
		return 0, mcpgo.NewToolResultError("employee_id is required and must be a positive integer")
	}
	return id, nil
}

func scoreEmployeeTool() mcpgo.Tool {
	return mcpgo.NewTool("score_employee",
		mcpgo.WithDescription("Compute the weighted performance score and grade of an employee."),
		mcpgo.WithNumber("employee_id", mcpgo.Required(), mcpgo.Description("Employee ID")),
		mcpgo.WithString("period", mcpgo.Description("Evaluation period label, e.g. 2025-Q4")),
	)
}

func compareSalaryTool() mcpgo.Tool {
	return mcpgo.NewTool("compare_salary",
		mcpgo.WithDescription("Compare an employee's salary with the market benchmark for their team and level."),
		mcpgo.WithNumber("employee_id", mcpgo.Required(), mcpgo.Description("Employee ID")),
	)
}

func skillsForTaskTool() mcpgo.Tool {
	return mcpgo.NewTool("skills_for_task",
		mcpgo.WithDescription("List the required and recommended skills of a task category."),
		mcpgo.WithString("task_id", mcpgo.Required(), mcpgo.Description("Task category, e.g. RAG_SYSTEM")),
	)
}

func tasksForSkillTool() mcpgo.Tool {
	return mcpgo.NewTool("tasks_for_skill",
		mcpgo.WithDescription("List the task categories that require or recommend a skill."),
		mcpgo.WithString("skill_id", mcpgo.Required(), mcpgo.Description("Skill identifier, e.g. PYTHON")),
	)
}

func employeeWorkloadTool() mcpgo.Tool {
	return mcpgo.NewTool("employee_workload",
		mcpgo.WithDescription("Show an employee's allocations, total allocation and overload risk tier."),
		mcpgo.WithNumber("employee_id", mcpgo.Required(), mcpgo.Description("Employee ID")),
	)
}

func proposeTeamTool() mcpgo.Tool {
	return mcpgo.NewTool("propose_team",
		mcpgo.WithDescription("Ask the language model to compose a project team from the current roster."),
		mcpgo.WithString("request", mcpgo.Required(), mcpgo.Description("Free-text project description")),
	)
}

// HandleScoreEmployee is the handler for the score_employee tool.
func (s *Server) HandleScoreEmployee(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.backend == nil {
		return mcpgo.NewToolResultError("backend is unavailable"), nil
	}
	id, bad := employeeID(req)
	if bad != nil {
		return bad, nil
	}
	score, err := s.backend.ScoreEmployee(ctx, id, req.GetString("period", ""))
	if err != nil {
		return mcpgo.NewToolResultErrorf("score failed: %s", err.Error()), nil
	}
	return toolResultJSON(score)
}

// HandleCompareSalary is the handler for the compare_salary tool.
func (s *Server) HandleCompareSalary(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.backend == nil {
		return mcpgo.NewToolResultError("backend is unavailable"), nil
	}
	id, bad := employeeID(req)
	if bad != nil {
		return bad, nil
	}
	cmp, err := s.backend.CompareSalary(ctx, id)
	if err != nil {
		return mcpgo.NewToolResultErrorf("salary comparison failed: %s", err.Error()), nil
	}
	return toolResultJSON(cmp)
}

// HandleSkillsForTask is the handler for the skills_for_task tool. Unknown
// tasks are reported with found=false rather than as errors.
func (s *Server) HandleSkillsForTask(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.backend == nil {
		return mcpgo.NewToolResultError("backend is unavailable"), nil
	}
	id := strings.TrimSpace(req.GetString("task_id", ""))
	if id == "" {
		return mcpgo.NewToolResultError("task_id is required and must not be empty"), nil
	}
	res, found := s.backend.SkillsForTask(ctx, model.TaskID(id))
	return toolResultJSON(map[string]any{
		"task_id":     id,
		"found":       found,
		"required":    res.Required,
		"recommended": res.Recommended,
	})
}

// HandleTasksForSkill is the handler for the tasks_for_skill tool.
func (s *Server) HandleTasksForSkill(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.backend == nil {
		return mcpgo.NewToolResultError("backend is unavailable"), nil
	}
	id := strings.TrimSpace(req.GetString("skill_id", ""))
	if id == "" {
		return mcpgo.NewToolResultError("skill_id is required and must not be empty"), nil
	}
	res, found := s.backend.TasksForSkill(ctx, model.SkillID(id))
	return toolResultJSON(map[string]any{
		"skill_id":    id,
		"found":       found,
		"required":    res.Required,
		"recommended": res.Recommended,
	})
}

type workload struct {
	EmployeeID      int                `json:"employee_id"`
	Name            string             `json:"name"`
	TotalAllocation int                `json:"total_allocation"`
	Risk            model.RiskTier     `json:"risk"`
	Allocations     []model.Allocation `json:"allocations"`
}

// HandleEmployeeWorkload is the handler for the employee_workload tool.
func (s *Server) HandleEmployeeWorkload(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.backend == nil {
		return mcpgo.NewToolResultError("backend is unavailable"), nil
	}
	id, bad := employeeID(req)
	if bad != nil {
		return bad, nil
	}
	e, err := s.backend.Employee(ctx, id)
	if err != nil {
		return mcpgo.NewToolResultErrorf("employee lookup failed: %s", err.Error()), nil
	}
	allocs := e.Allocations
	if allocs == nil {
		allocs = []model.Allocation{}
	}
	return toolResultJSON(workload{
		EmployeeID:      e.ID,
		Name:            e.Name,
		TotalAllocation: e.TotalAllocation,
		Risk:            e.Risk,
		Allocations:     allocs,
	})
}

// HandleProposeTeam is the handler for the propose_team tool. A failed
// proposal becomes a tool error carrying its error code.
func (s *Server) HandleProposeTeam(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.backend == nil {
		return mcpgo.NewToolResultError("backend is unavailable"), nil
	}
	request := strings.TrimSpace(req.GetString("request", ""))
	if request == "" {
		return mcpgo.NewToolResultError("request is required and must not be empty"), nil
	}
	p := s.backend.ProposeTeam(ctx, request)
	if p.Failed() {
		s.logger.Warn(ctx, "team proposal failed", logger.String("code", p.Error))
		return mcpgo.NewToolResultErrorf("%s: %s", p.Error, p.Summary), nil
	}
	return toolResultJSON(p)
}
