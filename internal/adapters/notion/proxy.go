package notion

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/okian/teamboard/pkg/logger"
)

// ProxyPrefix is the mount point of the proxy in the HTTP API.
const ProxyPrefix = "/api/notion/"

const (
	corsAllowMethods = "GET,OPTIONS,PATCH,DELETE,POST,PUT"
	corsAllowHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, " +
		"Content-MD5, Content-Type, Date, X-Api-Version"
	maxProxyBody = 1 << 20
)

// Proxy forwards /api/notion/{path} to {base}/v1/{path}, adding the API key
// server side so browsers never see it.
type Proxy struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

// NewProxy creates a proxy. It reuses the client options for base URL and
// HTTP client.
func NewProxy(apiKey string, opts ...Option) *Proxy {
	c := NewClient(apiKey, "", opts...)
	return &Proxy{apiKey: apiKey, baseURL: c.baseURL, http: c.http, logger: logger.Get().Named("notion-proxy")}
}

func writeProxyError(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ServeHTTP implements http.Handler.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if p.apiKey == "" {
		writeProxyError(w, http.StatusInternalServerError, map[string]string{"error": "NOTION_API_KEY is not configured"})
		return
	}

	endpoint := strings.Trim(strings.TrimPrefix(r.URL.Path, strings.TrimSuffix(ProxyPrefix, "/")), "/")
	if endpoint == "" {
		writeProxyError(w, http.StatusBadRequest, map[string]string{"error": "API endpoint is required"})
		return
	}

	target := p.baseURL + "/v1/" + endpoint
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	var body io.Reader
	if r.Method != http.MethodGet && r.Body != nil {
		body = io.LimitReader(r.Body, maxProxyBody)
	}
	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, body)
	if err != nil {
		writeProxyError(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to proxy request to Notion API", "details": err.Error(),
		})
		return
	}
	setHeaders(req.Header, p.apiKey)

	p.logger.Debug(r.Context(), "proxying notion request",
		logger.String("method", r.Method),
		logger.String("endpoint", endpoint),
	)
	resp, err := p.http.Do(req)
	if err != nil {
		p.logger.Error(r.Context(), "notion proxy failed", logger.Error(err))
		writeProxyError(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to proxy request to Notion API", "details": err.Error(),
		})
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		p.logger.Warn(r.Context(), "notion proxy upstream error", logger.Int("status", resp.StatusCode))
	}
	h.Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
