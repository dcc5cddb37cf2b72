package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/teamboard/internal/adapters/mcp"
	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/domain/benchmark"
	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/scoring"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
)

func init() {
	_ = logger.Init()
}

type backend struct {
	store    *repository.MemStore
	engine   *scoring.Engine
	cmp      *benchmark.Comparator
	proposal types.TeamProposal
	requests []string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	roster, err := repository.DefaultRoster()
	require.NoError(t, err)
	return &backend{
		store:  repository.NewMemStore(repository.WithRoster(roster)),
		engine: scoring.NewEngine(),
		cmp:    benchmark.NewComparator(),
	}
}

func (b *backend) Employee(ctx context.Context, id int) (model.Employee, error) {
	return b.store.Employee(ctx, id)
}

func (b *backend) ScoreEmployee(ctx context.Context, id int, period string) (types.PerformanceScore, error) {
	e, err := b.store.Employee(ctx, id)
	if err != nil {
		return types.PerformanceScore{}, err
	}
	r := b.store.Snapshot(ctx)
	return b.engine.Score(e, r.Projects, r.Tasks, period), nil
}

func (b *backend) CompareSalary(ctx context.Context, id int) (types.SalaryComparison, error) {
	e, err := b.store.Employee(ctx, id)
	if err != nil {
		return types.SalaryComparison{}, err
	}
	return b.cmp.Compare(e)
}

func (b *backend) SkillsForTask(_ context.Context, id model.TaskID) (catalog.TaskSkills, bool) {
	return catalog.SkillsForTask(id)
}

func (b *backend) TasksForSkill(_ context.Context, id model.SkillID) (catalog.SkillTasks, bool) {
	return catalog.TasksForSkill(id)
}

func (b *backend) ProposeTeam(_ context.Context, request string) types.TeamProposal {
	b.requests = append(b.requests, request)
	return b.proposal
}

func makeReq(toolName string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func TestNewServer_RegistersTools(t *testing.T) {
	srv := mcp.NewServer(newBackend(t))
	require.NotNil(t, srv.MCPServer())

	msg := srv.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	for _, name := range []string{
		"score_employee", "compare_salary", "skills_for_task",
		"tasks_for_skill", "employee_workload", "propose_team",
	} {
		assert.Contains(t, string(raw), `"name":"`+name+`"`)
	}
}

func TestScoreEmployee(t *testing.T) {
	srv := mcp.NewServer(newBackend(t))
	ctx := context.Background()

	result, err := srv.HandleScoreEmployee(ctx, makeReq("score_employee", map[string]any{
		"employee_id": float64(1),
		"period":      "2026-Q1",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var score types.PerformanceScore
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &score))
	assert.Equal(t, 1, score.EmployeeID)
	assert.Equal(t, "2026-Q1", score.Period)
	assert.GreaterOrEqual(t, score.TotalScore, 0.0)
	assert.LessOrEqual(t, score.TotalScore, 100.0)
}

func TestScoreEmployee_InvalidID(t *testing.T) {
	srv := mcp.NewServer(newBackend(t))

	result, err := srv.HandleScoreEmployee(context.Background(), makeReq("score_employee", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "employee_id")

	result, err = srv.HandleScoreEmployee(context.Background(), makeReq("score_employee", map[string]any{"employee_id": 42}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "not found")
}

func TestCompareSalary(t *testing.T) {
	srv := mcp.NewServer(newBackend(t))
	ctx := context.Background()

	result, err := srv.HandleCompareSalary(ctx, makeReq("compare_salary", map[string]any{"employee_id": 1}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var cmp types.SalaryComparison
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &cmp))
	assert.Equal(t, 11500, cmp.Salary)
	assert.Equal(t, 1500, cmp.Deviation)
	assert.Equal(t, types.Above, cmp.Classification)

	// Employee 5 has no salary on record.
	result, err = srv.HandleCompareSalary(ctx, makeReq("compare_salary", map[string]any{"employee_id": 5}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "salary missing")
}

func TestCatalogTools(t *testing.T) {
	srv := mcp.NewServer(newBackend(t))
	ctx := context.Background()

	result, err := srv.HandleSkillsForTask(ctx, makeReq("skills_for_task", map[string]any{"task_id": "MCP_SERVER"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, textContent(t, result), `"found":true`)

	result, err = srv.HandleSkillsForTask(ctx, makeReq("skills_for_task", map[string]any{"task_id": "UNKNOWN"}))
	require.NoError(t, err)
	require.False(t, result.IsError, "unknown tasks degrade instead of failing")
	assert.Contains(t, textContent(t, result), `"found":false`)
	assert.Contains(t, textContent(t, result), `"required":[]`)

	result, err = srv.HandleTasksForSkill(ctx, makeReq("tasks_for_skill", map[string]any{"skill_id": "MCP"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, textContent(t, result), "MCP_SERVER")

	result, err = srv.HandleTasksForSkill(ctx, makeReq("tasks_for_skill", map[string]any{"skill_id": " "}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestEmployeeWorkload(t *testing.T) {
	srv := mcp.NewServer(newBackend(t))

	result, err := srv.HandleEmployeeWorkload(context.Background(), makeReq("employee_workload", map[string]any{"employee_id": 2}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got struct {
		TotalAllocation int            `json:"total_allocation"`
		Risk            model.RiskTier `json:"risk"`
		Allocations     []model.Allocation
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &got))
	assert.Equal(t, 100, got.TotalAllocation)
	assert.Equal(t, model.RiskCritical, got.Risk)
	assert.Len(t, got.Allocations, 2)
}

func TestProposeTeam(t *testing.T) {
	b := newBackend(t)
	srv := mcp.NewServer(b)
	ctx := context.Background()

	b.proposal = types.TeamProposal{ProjectName: "RAG bot", Summary: "two people"}
	result, err := srv.HandleProposeTeam(ctx, makeReq("propose_team", map[string]any{"request": "build a RAG bot"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, textContent(t, result), "RAG bot")
	assert.Equal(t, []string{"build a RAG bot"}, b.requests)

	b.proposal = types.TeamProposal{ProjectName: "Error", Error: "NO_RESPONSE", Summary: "empty reply"}
	result, err = srv.HandleProposeTeam(ctx, makeReq("propose_team", map[string]any{"request": "x"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "NO_RESPONSE")

	result, err = srv.HandleProposeTeam(ctx, makeReq("propose_team", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestNilBackend(t *testing.T) {
	srv := mcp.NewServer(nil)
	result, err := srv.HandleEmployeeWorkload(context.Background(), makeReq("employee_workload", map[string]any{"employee_id": 1}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
