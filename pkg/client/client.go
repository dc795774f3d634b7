// Package client is a typed HTTP client for the fittrack API.
package client

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
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s, HTTP %d)", e.Message, e.Field, e.Status)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
			apiErr.Field = payload.Field
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ---------- Users ----------

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var res AuthResult
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/users/register", nil, body, &res); err != nil {
		return nil, err
	}
	c.Token = res.Token
	return &res, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", nil, body, &res); err != nil {
		return nil, err
	}
	c.Token = res.Token
	return &res, nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPatch, "/api/users/profile", nil, patch, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ---------- Workouts ----------

func (c *Client) ListWorkouts(ctx context.Context, filter WorkoutFilter) ([]Workout, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.From != "" {
		q.Set("from", filter.From)
	}
	if filter.To != "" {
		q.Set("to", filter.To)
	}
	if filter.Search != "" {
		q.Set("q", filter.Search)
	}

	var workouts []Workout
	if err := c.do(ctx, http.MethodGet, "/api/workouts", q, nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) GetWorkout(ctx context.Context, id string) (*Workout, error) {
	var w Workout
	if err := c.do(ctx, http.MethodGet, "/api/workouts/"+url.PathEscape(id), nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) CreateWorkout(ctx context.Context, in WorkoutInput) (*Workout, error) {
	var w Workout
	if err := c.do(ctx, http.MethodPost, "/api/workouts", nil, in, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) UpdateWorkout(ctx context.Context, id string, patch WorkoutPatch) (*Workout, error) {
	var w Workout
	if err := c.do(ctx, http.MethodPatch, "/api/workouts/"+url.PathEscape(id), nil, patch, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/workouts/"+url.PathEscape(id), nil, nil, nil)
}

// ---------- Goals ----------

func (c *Client) ListGoals(ctx context.Context, filter GoalFilter) ([]Goal, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Search != "" {
		q.Set("q", filter.Search)
	}

	var goals []Goal
	if err := c.do(ctx, http.MethodGet, "/api/goals", q, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) GetGoal(ctx context.Context, id string) (*Goal, error) {
	var g Goal
	if err := c.do(ctx, http.MethodGet, "/api/goals/"+url.PathEscape(id), nil, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) CreateGoal(ctx context.Context, in GoalInput) (*Goal, error) {
	var g Goal
	if err := c.do(ctx, http.MethodPost, "/api/goals", nil, in, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id string, patch GoalPatch) (*Goal, error) {
	var g Goal
	if err := c.do(ctx, http.MethodPatch, "/api/goals/"+url.PathEscape(id), nil, patch, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/goals/"+url.PathEscape(id), nil, nil, nil)
}

// ---------- Stats ----------

func (c *Client) Summary(ctx context.Context, days int) (*Summary, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	var s Summary
	if err := c.do(ctx, http.MethodGet, "/api/stats/summary", q, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
