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

	"github.com/harborview/lens/internal/model"
)

// HTTPClient implements LensClient using the lens HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	principal  string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request; principal is sent as the acting user id.
func NewHTTPClient(baseURL, token, principal string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		principal:  principal,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) CreateSavedSearch(ctx context.Context, req *SaveSearchRequest) (*model.SavedSearch, error) {
	var saved model.SavedSearch
	if err := c.doJSON(ctx, http.MethodPost, "/api/saved-searches", req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *HTTPClient) GetSavedSearch(ctx context.Context, id string) (*model.SavedSearch, error) {
	var saved model.SavedSearch
	if err := c.doJSON(ctx, http.MethodGet, "/api/saved-searches/"+url.PathEscape(id), nil, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *HTTPClient) ListSavedSearches(ctx context.Context) (*ListSavedSearchesResponse, error) {
	var resp ListSavedSearchesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/saved-searches", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateSavedSearch(ctx context.Context, id string, req *SaveSearchRequest) (*model.SavedSearch, error) {
	var saved model.SavedSearch
	if err := c.doJSON(ctx, http.MethodPut, "/api/saved-searches/"+url.PathEscape(id), req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *HTTPClient) DeleteSavedSearch(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/saved-searches/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ExecuteSearch(ctx context.Context, id string) ([]model.SearchResult, error) {
	var results []model.SearchResult
	if err := c.doJSON(ctx, http.MethodGet, "/api/search/execute/"+url.PathEscape(id), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// APIError is an error response from the lens API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// doJSON performs a JSON request/response round trip against the API.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.principal != "" {
		req.Header.Set("X-Lens-User", c.principal)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content: success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
