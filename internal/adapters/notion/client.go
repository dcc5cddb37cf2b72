// Package notion archives projects and tasks into a Notion database.
//
// Calls never return Go errors past this package; failures are reported in
// the Success/Error fields of the result types.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
)

// APIVersion is sent as the Notion-Version header.
const APIVersion = "2022-06-28"

const (
	defaultBaseURL     = "https://api.notion.com"
	defaultTimeout     = 15 * time.Second
	maxRequiredSkills  = 10
	defaultCategory    = "General"
	maxErrorBodyLength = 1 << 16
)

// Client talks to the Notion REST API.
type Client struct {
	apiKey     string
	databaseID string
	baseURL    string
	http       *http.Client
	logger     logger.Logger
}

// NewClient creates a Client for one database.
func NewClient(apiKey, databaseID string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		databaseID: databaseID,
		baseURL:    defaultBaseURL,
		http:       &http.Client{Timeout: defaultTimeout},
		logger:     logger.Get().Named("notion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// Enabled reports whether both credentials are set.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.databaseID != ""
}

type richText struct {
	Text struct {
		Content string `json:"content"`
	} `json:"text"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

func title(s string) map[string]any {
	rt := richText{}
	rt.Text.Content = s
	return map[string]any{"title": []richText{rt}}
}

func selectProp(name string) map[string]any {
	return map[string]any{"select": selectOption{Name: name}}
}

func multiSelect(names []string) map[string]any {
	opts := make([]selectOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, selectOption{Name: n})
	}
	return map[string]any{"multi_select": opts}
}

func number(n int) map[string]any {
	return map[string]any{"number": n}
}

// date renders an empty day as a cleared property.
func date(day string) map[string]any {
	if day == "" {
		return map[string]any{"date": nil}
	}
	return map[string]any{"date": dateValue{Start: day}}
}

// ProjectProperties builds the page properties of an archived project.
func ProjectProperties(p types.ProjectRecord) map[string]any { //nolint:gocritic // hugeParam
	category := p.Category
	if category == "" {
		category = defaultCategory
	}
	return map[string]any{
		"Name":       title(p.Name),
		"Status":     selectProp(p.Status),
		"Progress":   number(p.Progress),
		"Start Date": date(p.StartDate),
		"End Date":   date(p.EndDate),
		"Team":       selectProp(p.TeamType),
		"Members":    multiSelect(p.Members),
		"Category":   selectProp(category),
	}
}

// TaskProperties builds the page properties of an archived task. Only the
// first ten required skills are sent.
func TaskProperties(t types.TaskRecord) map[string]any { //nolint:gocritic // hugeParam
	skills := t.RequiredSkills
	if len(skills) > maxRequiredSkills {
		skills = skills[:maxRequiredSkills]
	}
	return map[string]any{
		"Name":            title(fmt.Sprintf("[%s] %s", t.ProjectName, t.Name)),
		"Task Type":       selectProp(t.TaskType),
		"Progress":        number(t.Progress),
		"Assignees":       multiSelect(t.Assignees),
		"Required Skills": multiSelect(skills),
		"Start Date":      date(t.StartDate),
		"End Date":        date(t.EndDate),
	}
}

// PushProject creates a page for a project.
func (c *Client) PushProject(ctx context.Context, p types.ProjectRecord) types.PushResult { //nolint:gocritic // hugeParam
	return c.createPage(ctx, ProjectProperties(p))
}

// PushTask creates a page for a task.
func (c *Client) PushTask(ctx context.Context, t types.TaskRecord) types.PushResult { //nolint:gocritic // hugeParam
	return c.createPage(ctx, TaskProperties(t))
}

func (c *Client) createPage(ctx context.Context, props map[string]any) types.PushResult {
	if !c.Enabled() {
		return types.PushResult{Error: ErrNotConfigured.Error()}
	}
	body := map[string]any{
		"parent":     map[string]string{"database_id": c.databaseID},
		"properties": props,
	}
	var page struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/pages", body, &page); err != nil {
		c.logger.Error(ctx, "notion archive failed", logger.Error(err))
		return types.PushResult{Error: err.Error()}
	}
	return types.PushResult{Success: true, ID: page.ID}
}

// Pull queries a database. An empty databaseID uses the configured one; a nil
// filter queries everything.
func (c *Client) Pull(ctx context.Context, databaseID string, filter map[string]any) types.PullResult {
	if databaseID == "" {
		databaseID = c.databaseID
	}
	if c.apiKey == "" || databaseID == "" {
		return types.PullResult{Error: ErrNotConfigured.Error()}
	}
	body := map[string]any{}
	if filter != nil {
		body["filter"] = filter
	}
	var out struct {
		Results []map[string]any `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", body, &out); err != nil {
		c.logger.Error(ctx, "notion query failed", logger.Error(err))
		return types.PullResult{Error: err.Error()}
	}
	if out.Results == nil {
		out.Results = []map[string]any{}
	}
	return types.PullResult{Success: true, Results: out.Results}
}

// Check verifies that the configured database is reachable. Without
// credentials no request is made.
func (c *Client) Check(ctx context.Context) types.ConnectionStatus {
	if !c.Enabled() {
		return types.ConnectionStatus{Error: ErrNotConfigured.Error()}
	}
	if err := c.do(ctx, http.MethodGet, "/databases/"+c.databaseID, nil, nil); err != nil {
		return types.ConnectionStatus{Error: err.Error()}
	}
	return types.ConnectionStatus{Connected: true}
}

// do sends one request to {base}/v1{path}. Non-2xx answers become
// ErrUpstream carrying Notion's message when there is one.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/v1"+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	setHeaders(req.Header, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: %s", ErrUpstream, apiErr.Message)
		}
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setHeaders(h http.Header, apiKey string) {
	h.Set("Authorization", "Bearer "+apiKey)
	h.Set("Notion-Version", APIVersion)
	h.Set("Content-Type", "application/json")
}
