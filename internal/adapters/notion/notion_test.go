package notion_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/okian/teamboard/internal/adapters/notion"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() { //nolint:gochecknoinits // test logger setup
	_ = logger.Init()
}

type capturedRequest struct {
	Method  string
	Path    string
	Query   string
	Headers http.Header
	Body    map[string]any
}

// fakeNotion records requests and answers with the configured status and body.
type fakeNotion struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
}

func (f *fakeNotion) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Headers: r.Header.Clone(), Body: body,
	})
	status, resp := f.status, f.body
	f.mu.Unlock()
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

func (f *fakeNotion) last() capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeNotion) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func sampleProject() types.ProjectRecord {
	return types.ProjectRecord{
		Name: "AI chatbot upgrade", Status: "OnTrack", Progress: 65,
		StartDate: "2025-09-01", EndDate: "2026-02-28",
		TeamType: "COLLABORATION", Members: []string{"Kim", "Lee"},
	}
}

func sampleTask() types.TaskRecord {
	skills := make([]string, 12)
	for i := range skills {
		skills[i] = "S" + string(rune('A'+i))
	}
	return types.TaskRecord{
		Name: "RAG pipeline", ProjectName: "AI chatbot upgrade", TaskType: "RAG_SYSTEM",
		Progress: 80, Assignees: []string{"Kim"}, RequiredSkills: skills, StartDate: "2025-09-01",
	}
}

func TestClientPush(t *testing.T) {
	Convey("Given a Notion client against a fake API", t, func() {
		fake := &fakeNotion{body: `{"id":"page-1"}`}
		srv := httptest.NewServer(fake)
		defer srv.Close()
		c := notion.NewClient("secret", "db-1", notion.WithBaseURL(srv.URL))
		ctx := context.Background()

		Convey("When pushing a project", func() {
			res := c.PushProject(ctx, sampleProject())
			req := fake.last()

			Convey("Then a page should be created with the project properties", func() {
				So(res.Success, ShouldBeTrue)
				So(res.ID, ShouldEqual, "page-1")
				So(req.Method, ShouldEqual, http.MethodPost)
				So(req.Path, ShouldEqual, "/v1/pages")
				So(req.Headers.Get("Authorization"), ShouldEqual, "Bearer secret")
				So(req.Headers.Get("Notion-Version"), ShouldEqual, "2022-06-28")
				So(req.Headers.Get("Content-Type"), ShouldEqual, "application/json")

				parent := req.Body["parent"].(map[string]any)
				So(parent["database_id"], ShouldEqual, "db-1")
				props := req.Body["properties"].(map[string]any)
				So(props, ShouldContainKey, "Start Date")
				category := props["Category"].(map[string]any)["select"].(map[string]any)
				So(category["name"], ShouldEqual, "General")
				members := props["Members"].(map[string]any)["multi_select"].([]any)
				So(len(members), ShouldEqual, 2)
			})
		})

		Convey("When pushing a task", func() {
			res := c.PushTask(ctx, sampleTask())
			props := fake.last().Body["properties"].(map[string]any)

			Convey("Then the title should be prefixed and skills capped at ten", func() {
				So(res.Success, ShouldBeTrue)
				title := props["Name"].(map[string]any)["title"].([]any)[0].(map[string]any)["text"].(map[string]any)
				So(title["content"], ShouldEqual, "[AI chatbot upgrade] RAG pipeline")
				skills := props["Required Skills"].(map[string]any)["multi_select"].([]any)
				So(len(skills), ShouldEqual, 10)
				So(props["End Date"].(map[string]any)["date"], ShouldBeNil)
			})
		})

		Convey("When Notion rejects the page", func() {
			fake.status = http.StatusBadRequest
			fake.body = `{"object":"error","message":"Status is not a property that exists."}`
			res := c.PushProject(ctx, sampleProject())

			Convey("Then the failure should carry Notion's message", func() {
				So(res.Success, ShouldBeFalse)
				So(res.Error, ShouldContainSubstring, "Status is not a property")
			})
		})

		Convey("When credentials are missing", func() {
			unconfigured := notion.NewClient("", "db-1", notion.WithBaseURL(srv.URL))
			res := unconfigured.PushProject(ctx, sampleProject())
			status := unconfigured.Check(ctx)

			Convey("Then nothing should be sent", func() {
				So(res.Success, ShouldBeFalse)
				So(status.Connected, ShouldBeFalse)
				So(status.Error, ShouldNotBeEmpty)
				So(fake.count(), ShouldEqual, 0)
			})
		})
	})
}

func TestClientPullAndCheck(t *testing.T) {
	Convey("Given a Notion client against a fake API", t, func() {
		fake := &fakeNotion{body: `{"results":[{"id":"p1"},{"id":"p2"}]}`}
		srv := httptest.NewServer(fake)
		defer srv.Close()
		c := notion.NewClient("secret", "db-1", notion.WithBaseURL(srv.URL))
		ctx := context.Background()

		Convey("When pulling with a filter", func() {
			res := c.Pull(ctx, "", map[string]any{"property": "Status"})
			req := fake.last()

			Convey("Then the configured database should be queried", func() {
				So(res.Success, ShouldBeTrue)
				So(len(res.Results), ShouldEqual, 2)
				So(req.Path, ShouldEqual, "/v1/databases/db-1/query")
				So(req.Body, ShouldContainKey, "filter")
			})
		})

		Convey("When checking the connection", func() {
			status := c.Check(ctx)

			Convey("Then the database should be fetched", func() {
				So(status.Connected, ShouldBeTrue)
				So(fake.last().Method, ShouldEqual, http.MethodGet)
				So(fake.last().Path, ShouldEqual, "/v1/databases/db-1")
			})
		})

		Convey("When the database is unreachable", func() {
			fake.status = http.StatusNotFound
			fake.body = `{}`
			status := c.Check(ctx)

			Convey("Then the status should say so", func() {
				So(status.Connected, ShouldBeFalse)
				So(status.Error, ShouldContainSubstring, "404")
			})
		})
	})
}

func TestProxy(t *testing.T) {
	Convey("Given a proxy in front of a fake API", t, func() {
		fake := &fakeNotion{status: http.StatusCreated, body: `{"id":"page-9"}`}
		srv := httptest.NewServer(fake)
		defer srv.Close()
		proxy := notion.NewProxy("secret", notion.WithBaseURL(srv.URL))

		Convey("When forwarding a POST", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/notion/databases/db-1/query?page_size=5", strings.NewReader(`{"filter":{}}`))
			rec := httptest.NewRecorder()
			proxy.ServeHTTP(rec, req)
			upstream := fake.last()

			Convey("Then method, path, body and status should be mirrored", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(rec.Body.String(), ShouldEqual, `{"id":"page-9"}`)
				So(rec.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
				So(upstream.Method, ShouldEqual, http.MethodPost)
				So(upstream.Path, ShouldEqual, "/v1/databases/db-1/query")
				So(upstream.Query, ShouldEqual, "page_size=5")
				So(upstream.Headers.Get("Authorization"), ShouldEqual, "Bearer secret")
				So(upstream.Body, ShouldContainKey, "filter")
			})
		})

		Convey("When receiving a preflight", func() {
			rec := httptest.NewRecorder()
			proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/notion/pages", nil))

			Convey("Then it should answer 200 without calling upstream", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "PATCH")
				So(fake.count(), ShouldEqual, 0)
			})
		})

		Convey("When no endpoint is given", func() {
			rec := httptest.NewRecorder()
			proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notion/", nil))

			Convey("Then it should answer 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "API endpoint is required")
			})
		})

		Convey("When the key is missing", func() {
			rec := httptest.NewRecorder()
			notion.NewProxy("", notion.WithBaseURL(srv.URL)).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notion/users", nil))

			Convey("Then it should answer 500", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				So(rec.Body.String(), ShouldContainSubstring, "NOTION_API_KEY is not configured")
			})
		})
	})
}

func TestLocalArchive(t *testing.T) {
	Convey("Given a local archive in a temp dir", t, func() {
		ctx := context.Background()
		a := notion.NewLocalArchive(filepath.Join(t.TempDir(), "archive.jsonl"))

		Convey("When nothing was saved", func() {
			entries, err := a.List(ctx)

			Convey("Then the archive should be empty", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When saving records", func() {
			So(a.Save(ctx, "project", sampleProject()), ShouldBeNil)
			So(a.Save(ctx, "task", sampleTask()), ShouldBeNil)
			entries, err := a.List(ctx)

			Convey("Then they should be listed in order with metadata", func() {
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 2)
				So(entries[0]["kind"], ShouldEqual, "project")
				So(entries[0]["name"], ShouldEqual, "AI chatbot upgrade")
				So(entries[0]["archived_at"], ShouldNotBeEmpty)
				So(entries[1]["taskType"], ShouldEqual, "RAG_SYSTEM")
			})
		})

		Convey("When saving a non-object", func() {
			err := a.Save(ctx, "project", []string{"x"})

			Convey("Then it should be rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

type stubPusher struct {
	enabled bool
	result  types.PushResult
	calls   int
}

func (s *stubPusher) Enabled() bool { return s.enabled }

func (s *stubPusher) PushProject(context.Context, types.ProjectRecord) types.PushResult {
	s.calls++
	return s.result
}

func (s *stubPusher) PushTask(context.Context, types.TaskRecord) types.PushResult {
	s.calls++
	return s.result
}

func TestArchiver(t *testing.T) {
	Convey("Given an archiver with a local fallback", t, func() {
		ctx := context.Background()
		local := notion.NewLocalArchive(filepath.Join(t.TempDir(), "archive.jsonl"))
		p := sampleProject()
		job := types.ArchiveJob{ID: "job-1", Key: "project:101", Kind: types.ArchiveProject, Project: &p}

		Convey("When Notion accepts the page", func() {
			remote := &stubPusher{enabled: true, result: types.PushResult{Success: true, ID: "page-1"}}
			res, target := notion.NewArchiver(remote, local).Archive(ctx, job)

			Convey("Then it should land in Notion only", func() {
				So(res.Success, ShouldBeTrue)
				So(res.ID, ShouldEqual, "page-1")
				So(target, ShouldEqual, notion.TargetNotion)
				entries, _ := local.List(ctx)
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When Notion fails", func() {
			remote := &stubPusher{enabled: true, result: types.PushResult{Error: "boom"}}
			res, target := notion.NewArchiver(remote, local).Archive(ctx, job)

			Convey("Then it should fall back to the local archive", func() {
				So(res.Success, ShouldBeTrue)
				So(target, ShouldEqual, notion.TargetLocal)
				So(remote.calls, ShouldEqual, 1)
				entries, _ := local.List(ctx)
				So(len(entries), ShouldEqual, 1)
			})
		})

		Convey("When Notion is not configured", func() {
			remote := &stubPusher{}
			_, target := notion.NewArchiver(remote, local).Archive(ctx, job)

			Convey("Then Notion should not be called", func() {
				So(target, ShouldEqual, notion.TargetLocal)
				So(remote.calls, ShouldEqual, 0)
			})
		})

		Convey("When there is no fallback and Notion fails", func() {
			remote := &stubPusher{enabled: true, result: types.PushResult{Error: "boom"}}
			res, _ := notion.NewArchiver(remote, nil).Archive(ctx, job)

			Convey("Then the failure should be reported", func() {
				So(res.Success, ShouldBeFalse)
				So(res.Error, ShouldEqual, "boom")
			})
		})

		Convey("When the job carries no record", func() {
			res, _ := notion.NewArchiver(&stubPusher{}, local).Archive(ctx, types.ArchiveJob{ID: "x"})

			Convey("Then it should be rejected", func() {
				So(res.Success, ShouldBeFalse)
			})
		})
	})
}
