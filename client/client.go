// Package client is a typed HTTP client for the SkillBridge API. Failures
// map onto a small transport error taxonomy; the last successfully fetched
// data always stays usable on the caller's side since errors never carry
// partial results.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Timeouts belong here,
// not to the request logic.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

func doRequest[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	var zero T

	fullURL := c.baseURL + endpoint
	if _, err := url.ParseRequestURI(fullURL); err != nil {
		return zero, &APIError{Kind: KindInvalidURL, Err: err}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return zero, &APIError{Kind: KindDecodingError, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return zero, &APIError{Kind: KindInvalidURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &APIError{Kind: KindNoConnection, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &APIError{Kind: KindInvalidResponse, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			return zero, &APIError{Kind: KindUnauthorized, StatusCode: resp.StatusCode}
		}
		return zero, &APIError{
			Kind:       KindServerError,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(data),
		}
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, &APIError{Kind: KindDecodingError, Err: err}
	}
	return out, nil
}

// serverMessage pulls the error envelope message out of a failure body, if
// the body carries one.
func serverMessage(data []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	return envelope.Error.Message
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	return doRequest[LoginResponse](ctx, c, http.MethodPost, "/api/auth/login", body)
}

func (c *Client) Register(ctx context.Context, email, password, name string) (LoginResponse, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	return doRequest[LoginResponse](ctx, c, http.MethodPost, "/api/auth/register", body)
}

func (c *Client) GetCurrentUser(ctx context.Context) (User, error) {
	return doRequest[User](ctx, c, http.MethodGet, "/api/users/me", nil)
}

func (c *Client) GetGapReport(ctx context.Context, userID uuid.UUID) (GapReport, error) {
	return doRequest[GapReport](ctx, c, http.MethodGet, "/api/gap-reports/"+userID.String(), nil)
}

func (c *Client) GenerateRoadmap(ctx context.Context, userID uuid.UUID) (Roadmap, error) {
	body := map[string]string{"userId": userID.String()}
	return doRequest[Roadmap](ctx, c, http.MethodPost, "/api/roadmaps/generate", body)
}

func (c *Client) CompleteStep(ctx context.Context, roadmapID, stepID uuid.UUID) (Roadmap, error) {
	endpoint := fmt.Sprintf("/api/roadmaps/%s/steps/%s/complete", roadmapID, stepID)
	return doRequest[Roadmap](ctx, c, http.MethodPost, endpoint, nil)
}

func (c *Client) GetCourses(ctx context.Context) ([]Course, error) {
	return doRequest[[]Course](ctx, c, http.MethodGet, "/api/courses", nil)
}

func (c *Client) SuggestCourses(ctx context.Context, query string) ([]string, error) {
	endpoint := "/api/courses/suggest?q=" + url.QueryEscape(query)
	out, err := doRequest[struct {
		Suggestions []string `json:"suggestions"`
	}](ctx, c, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}
