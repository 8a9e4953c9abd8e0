package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	requestTimeout = 30 * time.Second

	// BlobFileName is the file the bookmark tree lives under inside the gist
	BlobFileName = "bookmarks.json"

	gistDescription = "Bookmarks Browser data"
)

// Remote-state errors, classified from HTTP responses. Transport errors
// (timeouts, connection failures) are returned wrapped but unclassified.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("gist not found")
	ErrMalformedResponse = errors.New("malformed response")
)

// Client talks to the GitHub Gist API as a single-document blob store
type Client struct {
	// BaseURL is overridable for tests; defaults to the public API
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a gist client with a bounded request timeout
func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type gistFile struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated,omitempty"`
}

type gistPayload struct {
	Description string              `json:"description,omitempty"`
	Public      *bool               `json:"public,omitempty"`
	Files       map[string]gistFile `json:"files"`
}

type gistResponse struct {
	ID    string              `json:"id"`
	Files map[string]gistFile `json:"files"`
}

// Create makes a new secret gist holding content and returns its id
func (c *Client) Create(ctx context.Context, token, content string) (string, error) {
	secret := false
	payload := gistPayload{
		Description: gistDescription,
		Public:      &secret,
		Files:       map[string]gistFile{BlobFileName: {Content: content}},
	}

	resp, err := c.do(ctx, token, http.MethodPost, "/gists", &payload)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("create: missing gist id: %w", ErrMalformedResponse)
	}
	return resp.ID, nil
}

// Update overwrites the gist's content in place
func (c *Client) Update(ctx context.Context, token, id, content string) error {
	payload := gistPayload{
		Files: map[string]gistFile{BlobFileName: {Content: content}},
	}
	_, err := c.do(ctx, token, http.MethodPatch, "/gists/"+id, &payload)
	return err
}

// Read fetches the gist and returns the stored content
func (c *Client) Read(ctx context.Context, token, id string) (string, error) {
	resp, err := c.do(ctx, token, http.MethodGet, "/gists/"+id, nil)
	if err != nil {
		return "", err
	}

	file, ok := resp.Files[BlobFileName]
	if !ok {
		return "", fmt.Errorf("read: gist has no %s: %w", BlobFileName, ErrMalformedResponse)
	}
	if file.Truncated {
		return "", fmt.Errorf("read: %s is truncated: %w", BlobFileName, ErrMalformedResponse)
	}
	return file.Content, nil
}

func (c *Client) do(ctx context.Context, token, method, path string, payload *gistPayload) (*gistResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, err)
	}

	var decoded gistResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%s %s: decode: %w", method, path, ErrMalformedResponse)
	}
	return &decoded, nil
}

// classifyStatus maps HTTP statuses onto the closed error set. Anything
// outside the expected codes means the remote did not answer the way this
// protocol requires, which callers surface as a malformed response.
func classifyStatus(code int) error {
	switch {
	case code == http.StatusOK || code == http.StatusCreated:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrMalformedResponse
	}
}
