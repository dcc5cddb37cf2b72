// Package staffing asks a language model for team proposals.
//
// RequestTeamComposition never returns a Go error: every failure is folded
// into the proposal's Error code with a readable Summary.
package staffing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/domain/types"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

const errorProjectName = "Error"

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// Client requests staffing proposals.
type Client struct {
	apiKey    string
	completer Completer
	newID     func() string
	logger    logger.Logger
}

// NewClient creates a Client. With an empty apiKey every request fails with
// API_KEY_MISSING without contacting the model.
func NewClient(apiKey, modelName string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		newID:  uuid.NewString,
		logger: logger.Get().Named("staffing"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.completer == nil && apiKey != "" {
		c.completer = NewAnthropicCompleter(apiKey, modelName)
	}
	return c
}

// RequestTeamComposition asks the model for a team that fits request.
func (c *Client) RequestTeamComposition(ctx context.Context, request string, employees []model.Employee, projects []model.Project) types.TeamProposal {
	p := c.request(ctx, request, employees, projects)
	outcome := "ok"
	if p.Failed() {
		outcome = strings.ToLower(p.Error)
		c.logger.Warn(ctx, "staffing proposal failed",
			logger.String("code", p.Error),
			logger.String("summary", p.Summary),
		)
	}
	metrics.RecordStaffingProposal(outcome)
	return p
}

func (c *Client) request(ctx context.Context, request string, employees []model.Employee, projects []model.Project) types.TeamProposal {
	if c.apiKey == "" || c.completer == nil {
		return failure(CodeAPIKeyMissing, "The Anthropic API key is not configured. Set TEAMBOARD_ANTHROPIC_API_KEY.")
	}

	text, err := c.completer.Complete(ctx, systemPrompt, BuildPrompt(request, employees, projects))
	if err != nil {
		var statusErr *StatusError
		switch {
		case errors.As(err, &statusErr):
			return failure(CodeAPIError, fmt.Sprintf("API call failed: %d", statusErr.StatusCode))
		case errors.Is(err, ErrNoResponse):
			return failure(CodeNoResponse, "The model returned no response.")
		default:
			return failure(CodeRequestFailed, "Request failed: "+err.Error())
		}
	}
	if strings.TrimSpace(text) == "" {
		return failure(CodeNoResponse, "The model returned no response.")
	}

	return c.parse(ctx, text)
}

func (c *Client) parse(ctx context.Context, text string) types.TeamProposal {
	raw, ok := ExtractJSON(text)
	if !ok {
		c.logger.Debug(ctx, "no JSON object in model response", logger.String("response", text))
		return failure(CodeJSONNotFound, "Could not find JSON in the model response.")
	}

	var p types.TeamProposal
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return failure(CodeJSONParseError, "JSON parse error: "+err.Error())
	}
	if p.Team == nil {
		p.Team = []types.ProposedMember{}
	}
	if p.WorkModules == nil {
		p.WorkModules = []types.WorkModule{}
	}
	p.Error = ""
	p.ID = c.newID()
	return p
}

// ExtractJSON strips an optional markdown fence and returns the widest
// {...} span of the remaining text.
func ExtractJSON(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "```"); ok {
		s = rest
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "```"))

	m := jsonObject.FindString(s)
	return m, m != ""
}

func failure(code, summary string) types.TeamProposal {
	return types.TeamProposal{
		ProjectName: errorProjectName,
		Team:        []types.ProposedMember{},
		WorkModules: []types.WorkModule{},
		Summary:     summary,
		Error:       code,
	}
}
