package memos

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

// DefaultTimeout bounds every request; there is no other cancellation path.
const DefaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client. A trailing slash on baseURL is ignored.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// GetMemo fetches a single memo by its ID.
func (c *Client) GetMemo(ctx context.Context, id string) (*Memo, error) {
	endpoint := fmt.Sprintf("%s/api/v1/memos/%s", c.baseURL, url.PathEscape(id))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get memo request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call memos get API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("memos API get error %d: %s", resp.StatusCode, string(raw))
	}

	var env memoEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode memos get response: %w", err)
	}
	return env.unwrap(), nil
}

// UpdateMemo patches a memo via PATCH /api/v1/memos/{id}.
func (c *Client) UpdateMemo(ctx context.Context, id string, req UpdateMemoRequest) (*Memo, error) {
	endpoint := fmt.Sprintf("%s/api/v1/memos/%s", c.baseURL, url.PathEscape(id))
	if req.UpdateMask != "" {
		endpoint += "?updateMask=" + url.QueryEscape(req.UpdateMask)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update memo request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build update memo request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call memos update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("memos API update error %d: %s", resp.StatusCode, string(raw))
	}

	var env memoEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode memos update response: %w", err)
	}
	return env.unwrap(), nil
}

// MemoURL is the web UI deep link for a memo.
func (c *Client) MemoURL(id string) string {
	return fmt.Sprintf("%s/m/%s", c.baseURL, url.PathEscape(id))
}

func (c *Client) authorize(r *http.Request) {
	if c.accessToken != "" {
		r.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}
}

// ---- Request/Response types scoped to this package ----

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{id}.
type UpdateMemoRequest struct {
	Content    string `json:"content"`
	UpdateMask string `json:"updateMask,omitempty"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

// memoEnvelope accepts both the flat memo object and the older {"memo": {...}} wrapper.
type memoEnvelope struct {
	Memo
	Wrapped *Memo `json:"memo"`
}

func (e memoEnvelope) unwrap() *Memo {
	if e.Content == "" && e.Wrapped != nil {
		return e.Wrapped
	}
	m := e.Memo
	return &m
}
