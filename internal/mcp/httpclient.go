package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
)

// ErrNotFound is returned when the remote API answers 404.
var ErrNotFound = errors.New("not found")

// HTTPClient implements DataSource by calling the fitplan REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale). The server
// resolves the user from the connection, so userID arguments are ignored.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("httpclient: %s: %w: %s", path, ErrNotFound, apiError(data))
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated:
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, apiError(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

// apiError extracts the message from a {"error": "..."} body.
func apiError(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}

func (c *HTTPClient) Profile(ctx context.Context, _ int) (models.UserProfile, error) {
	var p models.UserProfile
	err := c.do(ctx, http.MethodGet, "/api/v1/profile", nil, nil, &p)
	return p, err
}

func (c *HTTPClient) SaveProfile(ctx context.Context, _ int, p models.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/api/v1/profile", nil, p, nil)
}

func (c *HTTPClient) Generate(ctx context.Context, _ int, req planning.GenerateRequest) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.do(ctx, http.MethodPost, "/api/v1/plans", nil, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *HTTPClient) CurrentPlan(ctx context.Context, _ int) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.do(ctx, http.MethodGet, "/api/v1/plans/current", nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *HTTPClient) Plan(ctx context.Context, _ int, id uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.do(ctx, http.MethodGet, "/api/v1/plans/"+id.String(), nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *HTTPClient) History(ctx context.Context, _ int, limit int) ([]models.PlanSummary, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var hist []models.PlanSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/plans/history", params, nil, &hist); err != nil {
		return nil, err
	}
	return hist, nil
}

func (c *HTTPClient) Exercises(ctx context.Context, q catalog.Query) ([]models.ExerciseDefinition, error) {
	params := url.Values{}
	if q.Muscle != "" {
		params.Set("muscle", string(q.Muscle))
	}
	if q.Difficulty != "" {
		params.Set("difficulty", string(q.Difficulty))
	}
	if q.Kind != "" {
		params.Set("kind", string(q.Kind))
	}
	var defs []models.ExerciseDefinition
	if err := c.do(ctx, http.MethodGet, "/api/v1/exercises", params, nil, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func (c *HTTPClient) Templates(ctx context.Context) (map[models.Goal]models.GoalTemplate, error) {
	var t map[models.Goal]models.GoalTemplate
	if err := c.do(ctx, http.MethodGet, "/api/v1/templates", nil, nil, &t); err != nil {
		return nil, err
	}
	return t, nil
}
