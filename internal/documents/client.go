package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultTimeout is the default HTTP request timeout for document-service calls.
const DefaultTimeout = 30 * time.Second

// DefaultListLimit is the page size used when the caller does not specify one.
const DefaultListLimit = 50

// Form is the metadata the document service reports for one stored document.
type Form struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`
	UpdatedDate string `json:"updatedDate,omitempty"`
}

// Error represents a failed document-service request.
type Error struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document service error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("document service error for %s: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client talks to the document-retrieval service. Authentication is delegated
// to the TokenProvider so OAuth and static-key deployments share one client.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

// NewClient creates a document-service client rooted at baseURL.
func NewClient(baseURL string, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// ListRecent returns metadata for the most recently stored documents.
func (c *Client) ListRecent(ctx context.Context, limit int) ([]Form, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	endpoint := "/forms?limit=" + strconv.Itoa(limit)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeFormList(endpoint, body)
}

// GetDetails returns the full metadata record for one document.
func (c *Client) GetDetails(ctx context.Context, id string) (map[string]any, error) {
	endpoint := "/forms/" + url.PathEscape(id)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var details map[string]any
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to decode response", Cause: err}
	}
	return details, nil
}

// Download returns the raw document bytes for one document.
func (c *Client) Download(ctx context.Context, id string) ([]byte, error) {
	return c.get(ctx, "/forms/"+url.PathEscape(id)+"/pdf")
}

// Search returns documents matching the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Form, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	endpoint := "/forms/search?q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeFormList(endpoint, body)
}

// get performs an authenticated GET and returns the response body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to obtain bearer token", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Endpoint: endpoint, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return body, nil
}

// decodeFormList decodes a {"data": [...]} list payload.
func decodeFormList(endpoint string, body []byte) ([]Form, error) {
	var payload struct {
		Data []Form `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to decode response", Cause: err}
	}
	return payload.Data, nil
}
