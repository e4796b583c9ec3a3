// Package httpstore implements the task store over the board server's JSON API.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/runoshun/quadrant/internal/domain"
)

// Ensure Client implements the store ports.
var (
	_ domain.TaskStore    = (*Client)(nil)
	_ domain.GoalStore    = (*Client)(nil)
	_ domain.ReportSource = (*Client)(nil)
)

// Client talks to the board server.
type Client struct {
	httpClient *http.Client
	logger     domain.Logger
	baseURL    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the request logger.
func WithLogger(l domain.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     domain.NopLogger{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "quadrant",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch returns the snapshot of a period.
func (c *Client) Fetch(ctx context.Context, key domain.AddressingKey) (*domain.Snapshot, error) {
	if key == nil {
		return nil, domain.ErrInvalidPeriod
	}
	var body snapshotBody
	if err := c.do(ctx, http.MethodGet, kindPath(key), periodOf(key).query(), nil, &body); err != nil {
		return nil, err
	}
	return body.toDomain(key), nil
}

// Create adds a task to a period.
func (c *Client) Create(ctx context.Context, key domain.AddressingKey, draft domain.TaskDraft) error {
	if key == nil {
		return domain.ErrInvalidPeriod
	}
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}
	body := createBody{
		period:      periodOf(key),
		Title:       draft.Title,
		Priority:    string(draft.Priority),
		Description: draft.Description,
		Tags:        tags,
	}
	if key.Kind() == domain.KindWeekly {
		body.DueDate = draft.DueDate
	}
	return c.do(ctx, http.MethodPost, kindPath(key), nil, body, nil)
}

// Update applies an action to a task.
func (c *Client) Update(ctx context.Context, key domain.AddressingKey, taskID string, update domain.TaskUpdate) error {
	if key == nil {
		return domain.ErrInvalidPeriod
	}
	body := updateBody{
		period: periodOf(key),
		Action: string(update.Action),
		Value:  update.Value,
	}
	return c.do(ctx, http.MethodPut, kindPath(key)+"/"+url.PathEscape(taskID), nil, body, nil)
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, key domain.AddressingKey, taskID string) error {
	if key == nil {
		return domain.ErrInvalidPeriod
	}
	return c.do(ctx, http.MethodDelete, kindPath(key)+"/"+url.PathEscape(taskID), periodOf(key).query(), nil, nil)
}

// Reorder sets the order of the period's native tasks.
func (c *Client) Reorder(ctx context.Context, key domain.AddressingKey, order []string) error {
	if key == nil {
		return domain.ErrInvalidPeriod
	}
	if order == nil {
		order = []string{}
	}
	return c.do(ctx, http.MethodPut, kindPath(key)+"/reorder", nil, reorderBody{period: periodOf(key), Order: order}, nil)
}

// AddGoal appends a weekly goal.
func (c *Client) AddGoal(ctx context.Context, week domain.YearWeekKey, description string) error {
	return c.do(ctx, http.MethodPost, "/api/weekly/goals", nil, goalBody{period: periodOf(week), Description: description}, nil)
}

// SetGoal marks a goal completed or reopens it.
func (c *Client) SetGoal(ctx context.Context, week domain.YearWeekKey, index int, completed bool) error {
	action := "undo"
	if completed {
		action = "done"
	}
	return c.do(ctx, http.MethodPut, goalPath(index), nil, goalBody{period: periodOf(week), Action: action}, nil)
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, week domain.YearWeekKey, index int) error {
	return c.do(ctx, http.MethodDelete, goalPath(index), periodOf(week).query(), nil, nil)
}

// Report fetches a Markdown report.
func (c *Client) Report(ctx context.Context, req domain.ReportRequest) (string, error) {
	var body reportBody
	if err := c.do(ctx, http.MethodGet, "/api/report/"+string(req.Kind), reportQuery(req), nil, &body); err != nil {
		return "", err
	}
	return body.Content, nil
}

func kindPath(key domain.AddressingKey) string {
	return "/api/" + string(key.Kind())
}

func goalPath(index int) string {
	return "/api/weekly/goals/" + strconv.Itoa(index)
}

// do sends one JSON request. A non-nil in is encoded as the body;
// a non-nil out receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	reqErr := func(err error) error {
		return &RequestError{Method: method, Path: path, Err: err}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return reqErr(fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return reqErr(fmt.Errorf("create request: %w", err))
	}
	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("", "http", fmt.Sprintf("%s %s failed request_id=%s: %v", method, path, requestID, err))
		return reqErr(fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return reqErr(fmt.Errorf("read response: %w", err))
	}
	c.logger.Debug("", "http", fmt.Sprintf("%s %s -> %d request_id=%s elapsed=%s",
		method, path, resp.StatusCode, requestID, time.Since(start).Round(time.Millisecond)))

	if resp.StatusCode >= 400 {
		return &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    failureMessage(resp.StatusCode, data),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// failureMessage extracts the server's error field, falling back to a
// message carrying the status code.
func failureMessage(status int, data []byte) string {
	var sb statusBody
	if err := json.Unmarshal(data, &sb); err == nil && sb.Error != "" {
		return sb.Error
	}
	return genericMessage(status)
}
