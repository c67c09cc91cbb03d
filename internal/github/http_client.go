package github

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
)

// HTTPClientOptions configures an HTTPClient. Zero values pick sane
// defaults (api.github.com, 20s timeout).
type HTTPClientOptions struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	UserAgent  string
}

// HTTPClient talks to the GitHub contents API. It implements Client.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	userAgent  string
}

func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = "nova-backend"
	}
	return &HTTPClient{
		baseURL:    baseURL,
		token:      opts.Token,
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

type contentsResponse struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

func (c *HTTPClient) contentsURL(owner, repo, path string) string {
	u := fmt.Sprintf("%s/repos/%s/%s/contents", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	if path != "" {
		u += "/" + escapePath(path)
	}
	return u
}

// escapePath escapes each path segment but keeps the separators.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

func (c *HTTPClient) GetFile(ctx context.Context, owner, repo, path string) (*File, error) {
	body, err := c.do(ctx, http.MethodGet, c.contentsURL(owner, repo, path), nil)
	if err != nil {
		return nil, err
	}
	var parsed contentsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// a directory path answers with an array; there is no file revision
		// to report in that case
		return nil, fmt.Errorf("github: decode file %s: %w", path, err)
	}
	return &File{Path: parsed.Path, SHA: parsed.SHA, Content: parsed.Content}, nil
}

func (c *HTTPClient) ListDir(ctx context.Context, owner, repo, path string) ([]Entry, error) {
	body, err := c.do(ctx, http.MethodGet, c.contentsURL(owner, repo, path), nil)
	if err != nil {
		return nil, err
	}
	var parsed []contentsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("github: decode listing %q: %w", path, err)
	}
	entries := make([]Entry, 0, len(parsed))
	for _, item := range parsed {
		entries = append(entries, Entry{Name: item.Name, Path: item.Path, Type: item.Type})
	}
	return entries, nil
}

func (c *HTTPClient) UpsertFile(ctx context.Context, owner, repo, path, message, contentB64, sha string) error {
	payload := map[string]string{
		"message": message,
		"content": contentB64,
	}
	if sha != "" {
		payload["sha"] = sha
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, c.contentsURL(owner, repo, path), raw)
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(body))
		var parsed struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &parsed) == nil && strings.TrimSpace(parsed.Message) != "" {
			message = parsed.Message
		}
		return nil, fmt.Errorf("github: %s %s failed: status=%d message=%s", method, rawURL, resp.StatusCode, message)
	}
	return body, nil
}
