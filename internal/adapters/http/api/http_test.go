package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/teamboard/internal/adapters/http/api"
	"github.com/okian/teamboard/internal/adapters/repository"
	"github.com/okian/teamboard/internal/domain/benchmark"
	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

type mockDeduper struct {
	seen map[string]bool
}

func (m *mockDeduper) SeenAndRecord(_ context.Context, key string) bool {
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	if m.seen[key] {
		return true
	}
	m.seen[key] = true
	return false
}

func (m *mockDeduper) Unrecord(_ context.Context, key string) {
	delete(m.seen, key)
}

func (m *mockDeduper) Size() int64 {
	return int64(len(m.seen))
}

type mockDeps struct {
	mockDeduper

	store      *repository.MemStore
	enqueueCap int
	enqueued   []types.ArchiveJob
	salaryErr  error
	proposal   types.TeamProposal
	lookups    []string
}

func newMockDeps() *mockDeps {
	roster, err := repository.DefaultRoster()
	if err != nil {
		panic(err)
	}
	return &mockDeps{store: repository.NewMemStore(repository.WithRoster(roster)), enqueueCap: 100}
}

func (m *mockDeps) Employees(ctx context.Context) []model.Employee {
	return m.store.Employees(ctx)
}

func (m *mockDeps) Employee(ctx context.Context, id int) (model.Employee, error) {
	return m.store.Employee(ctx, id)
}

func (m *mockDeps) ScoreEmployee(ctx context.Context, id int, period string) (types.PerformanceScore, error) {
	e, err := m.store.Employee(ctx, id)
	if err != nil {
		return types.PerformanceScore{}, err
	}
	return types.PerformanceScore{EmployeeID: e.ID, EmployeeName: e.Name, Period: period}, nil
}

func (m *mockDeps) ScoreAll(_ context.Context, period string) ([]types.PerformanceScore, error) {
	return []types.PerformanceScore{{EmployeeID: 1, Period: period}}, nil
}

func (m *mockDeps) CompareSalary(ctx context.Context, id int) (types.SalaryComparison, error) {
	if m.salaryErr != nil {
		return types.SalaryComparison{}, m.salaryErr
	}
	if _, err := m.store.Employee(ctx, id); err != nil {
		return types.SalaryComparison{}, err
	}
	return types.SalaryComparison{EmployeeID: id, Classification: types.At}, nil
}

func (m *mockDeps) SkillsForTask(_ context.Context, id model.TaskID) (catalog.TaskSkills, bool) {
	m.lookups = append(m.lookups, string(id))
	return catalog.SkillsForTask(id)
}

func (m *mockDeps) TasksForSkill(_ context.Context, id model.SkillID) (catalog.SkillTasks, bool) {
	m.lookups = append(m.lookups, string(id))
	return catalog.TasksForSkill(id)
}

func (m *mockDeps) Projects(ctx context.Context) []model.Project {
	return m.store.Projects(ctx)
}

func (m *mockDeps) AssignAllocations(ctx context.Context, pid int, allocs []model.Allocation) error {
	return m.store.AssignAllocations(ctx, pid, allocs)
}

func (m *mockDeps) RemoveProject(ctx context.Context, pid int) error {
	return m.store.RemoveProject(ctx, pid)
}

func (m *mockDeps) ArchiveJobs(ctx context.Context, pid int) ([]types.ArchiveJob, error) {
	tasks, err := m.store.Tasks(ctx, pid)
	if err != nil {
		return nil, err
	}
	jobs := []types.ArchiveJob{{Key: fmt.Sprintf("project:%d", pid), Kind: types.ArchiveProject}}
	for _, t := range tasks {
		jobs = append(jobs, types.ArchiveJob{Key: fmt.Sprintf("task:%d:%s", pid, t.ID), Kind: types.ArchiveTask})
	}
	return jobs, nil
}

func (m *mockDeps) Enqueue(_ context.Context, job types.ArchiveJob) bool {
	if len(m.enqueued) >= m.enqueueCap {
		return false
	}
	m.enqueued = append(m.enqueued, job)
	return true
}

func (m *mockDeps) ProposeTeam(_ context.Context, request string) types.TeamProposal {
	p := m.proposal
	if p.ProjectName == "" && !p.Failed() {
		p.ProjectName = request
	}
	return p
}

func (m *mockDeps) ArchiveStatus(context.Context) types.ConnectionStatus {
	return types.ConnectionStatus{Connected: false, Error: "notion not configured"}
}

func (m *mockDeps) GetStats() map[string]any {
	return map[string]any{"started": true, "queueLength": len(m.enqueued)}
}

func newMux(deps *mockDeps, opts ...api.Option) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, opts...).Register(context.Background(), mux)
	return mux
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(newMockDeps())

		Convey("Then health should expose prometheus metrics", func() {
			w := do(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then stats should be served as JSON", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
			So(w.Body.String(), ShouldContainSubstring, `"started":true`)
		})

		Convey("Then a wrong method should be rejected by the mux", func() {
			w := do(mux, http.MethodPost, "/employees", "{}")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("Then registering on a nil mux should panic", func() {
			So(func() { api.NewServer(newMockDeps()).Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}

func TestEmployeeRoutes(t *testing.T) {
	Convey("Given the employee routes", t, func() {
		deps := newMockDeps()
		mux := newMux(deps)

		Convey("When listing employees", func() {
			w := do(mux, http.MethodGet, "/employees", "")

			Convey("Then every employee should carry totals and risk", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got []model.Employee
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(len(got), ShouldEqual, 5)
				So(got[1].TotalAllocation, ShouldEqual, 100)
				So(got[1].Risk, ShouldEqual, model.RiskCritical)
			})
		})

		Convey("When fetching an unknown employee", func() {
			w := do(mux, http.MethodGet, "/employees/99", "")

			Convey("Then the response should be 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w)["code"], ShouldEqual, "not_found")
			})
		})

		Convey("When the id is not a number", func() {
			w := do(mux, http.MethodGet, "/employees/abc/performance", "")

			Convey("Then the response should be 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "bad_request")
			})
		})

		Convey("When scoring with a period", func() {
			w := do(mux, http.MethodGet, "/employees/1/performance?period=2026-Q1", "")

			Convey("Then the period should be passed through", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got types.PerformanceScore
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got.EmployeeID, ShouldEqual, 1)
				So(got.Period, ShouldEqual, "2026-Q1")
			})
		})

		Convey("When listing all scores", func() {
			w := do(mux, http.MethodGet, "/performance?period=Q2", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Q2")
		})

		Convey("When comparing salaries", func() {
			Convey("Then a missing benchmark should be 404", func() {
				deps.salaryErr = fmt.Errorf("wrap: %w", benchmark.ErrBenchmarkNotFound)
				w := do(mux, http.MethodGet, "/employees/1/salary", "")
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w)["code"], ShouldEqual, "benchmark_not_found")
			})

			Convey("Then a missing salary should be 422", func() {
				deps.salaryErr = benchmark.ErrSalaryMissing
				w := do(mux, http.MethodGet, "/employees/5/salary", "")
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(decodeError(w)["code"], ShouldEqual, "salary_missing")
			})

			Convey("Then a known employee should get a comparison", func() {
				w := do(mux, http.MethodGet, "/employees/1/salary", "")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"classification":"at"`)
			})
		})
	})
}

func TestCatalogRoutes(t *testing.T) {
	Convey("Given the catalog routes", t, func() {
		deps := newMockDeps()
		mux := newMux(deps)

		Convey("When filtering tasks by team and area", func() {
			w := do(mux, http.MethodGet, "/catalog/tasks?team=AI_ENGINEERING&area=AI_AGENT", "")

			Convey("Then only matching tasks should be returned", func() {
				var got []model.TaskDefinition
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(len(got), ShouldEqual, 5)
				for _, task := range got {
					So(task.Area, ShouldEqual, model.AreaAIAgent)
				}
			})
		})

		Convey("When listing skills for a team", func() {
			w := do(mux, http.MethodGet, "/catalog/skills?team=AX", "")
			var got []model.SkillDefinition
			So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
			So(len(got), ShouldEqual, 14)
		})

		Convey("When resolving an unknown task", func() {
			w := do(mux, http.MethodGet, "/catalog/tasks/NOPE/skills", "")

			Convey("Then the lookup should degrade to empty lists", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"found":false`)
				So(w.Body.String(), ShouldContainSubstring, `"required":[]`)
				So(deps.lookups, ShouldResemble, []string{"NOPE"})
			})
		})

		Convey("When resolving tasks for a skill", func() {
			w := do(mux, http.MethodGet, "/catalog/skills/MCP/tasks", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"found":true`)
			So(w.Body.String(), ShouldContainSubstring, string(catalog.TaskMCPServer))
		})

		Convey("When fetching the matrix", func() {
			w := do(mux, http.MethodGet, "/catalog/matrix", "")
			var got []model.MatrixEntry
			So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
			So(len(got), ShouldEqual, len(catalog.Matrix()))
		})
	})
}

func TestProjectRoutes(t *testing.T) {
	Convey("Given the project routes", t, func() {
		deps := newMockDeps()
		mux := newMux(deps)

		Convey("When replacing a project's allocations", func() {
			w := do(mux, http.MethodPut, "/projects/101/allocations",
				`{"allocations":[{"employee_id":3,"percent":20,"start_date":"2026-01-01","end_date":"2026-06-30"}]}`)

			Convey("Then the aggregator should re-run", func() {
				So(w.Code, ShouldEqual, http.StatusNoContent)
				e, err := deps.store.Employee(context.Background(), 3)
				So(err, ShouldBeNil)
				So(e.TotalAllocation, ShouldEqual, 90)
				So(e.Risk, ShouldEqual, model.RiskHigh)

				kim, _ := deps.store.Employee(context.Background(), 1)
				So(kim.TotalAllocation, ShouldEqual, 30)
			})
		})

		Convey("When the allocation is out of range", func() {
			w := do(mux, http.MethodPut, "/projects/101/allocations", `{"allocations":[{"employee_id":3,"percent":120}]}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body is malformed", func() {
			w := do(mux, http.MethodPut, "/projects/101/allocations", `{"allocs":[]}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When deleting a project", func() {
			w := do(mux, http.MethodDelete, "/projects/102", "")

			Convey("Then its allocations should be gone", func() {
				So(w.Code, ShouldEqual, http.StatusNoContent)
				lee, _ := deps.store.Employee(context.Background(), 2)
				So(lee.TotalAllocation, ShouldEqual, 40)
				So(do(mux, http.MethodDelete, "/projects/102", "").Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When archiving a project", func() {
			w := do(mux, http.MethodPost, "/projects/101/archive", "")

			Convey("Then the project and its tasks should be queued", func() {
				So(w.Code, ShouldEqual, http.StatusAccepted)
				So(w.Body.String(), ShouldContainSubstring, `"accepted":4`)
				So(len(deps.enqueued), ShouldEqual, 4)
			})

			Convey("And archiving again should be a duplicate", func() {
				again := do(mux, http.MethodPost, "/projects/101/archive", "")
				So(again.Code, ShouldEqual, http.StatusOK)
				So(again.Body.String(), ShouldContainSubstring, `"duplicate":true`)
				So(len(deps.enqueued), ShouldEqual, 4)
			})
		})

		Convey("When the queue is full", func() {
			deps.enqueueCap = 2
			w := do(mux, http.MethodPost, "/projects/102/archive", "")

			Convey("Then the request should be rejected and the key rolled back", func() {
				So(w.Code, ShouldEqual, http.StatusTooManyRequests)
				So(decodeError(w)["code"], ShouldEqual, "backpressure")
				So(deps.Size(), ShouldEqual, 2)
			})
		})

		Convey("When archiving an unknown project", func() {
			w := do(mux, http.MethodPost, "/projects/999/archive", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStaffingRoutes(t *testing.T) {
	Convey("Given the staffing routes", t, func() {
		deps := newMockDeps()

		Convey("When the request is empty", func() {
			w := do(newMux(deps), http.MethodPost, "/staffing/proposals", `{"request":"  "}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the proposal succeeds", func() {
			w := do(newMux(deps), http.MethodPost, "/staffing/proposals", `{"request":"RAG chatbot"}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "RAG chatbot")
		})

		Convey("When the upstream fails", func() {
			deps.proposal = types.TeamProposal{ProjectName: "Error", Error: "API_ERROR", Summary: "status 500"}
			w := do(newMux(deps), http.MethodPost, "/staffing/proposals", `{"request":"x"}`)
			So(w.Code, ShouldEqual, http.StatusBadGateway)
			So(w.Body.String(), ShouldContainSubstring, "API_ERROR")
		})

		Convey("When checking archive status", func() {
			w := do(newMux(deps), http.MethodGet, "/archive/status", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"connected":false`)
		})

		Convey("When a notion proxy is mounted", func() {
			proxy := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				_, _ = w.Write([]byte(r.URL.Path))
			})
			w := do(newMux(deps, api.WithNotionProxy(proxy)), http.MethodPost, "/api/notion/pages", "{}")
			So(w.Code, ShouldEqual, http.StatusTeapot)
			So(w.Body.String(), ShouldEqual, "/api/notion/pages")
		})
	})
}

func TestErrorKinds(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		cause := errors.New("boom")
		err := api.WrapKind("api.op", api.ErrBackpressure, cause)

		Convey("Then both the kind and the cause should match", func() {
			So(errors.Is(err, api.ErrBackpressure), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.op: backpressure: boom")
		})

		Convey("Then NewKind should carry only the kind", func() {
			err := api.NewKind("api.op", api.ErrBadRequest)
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.op: bad request")
		})

		Convey("Then Wrap should ignore nil", func() {
			So(api.Wrap("api.op", nil), ShouldBeNil)
		})
	})
}
