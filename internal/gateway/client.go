// Package gateway is the typed wrapper around the upstream workspace REST
// API. Every operation is a single HTTP attempt: no retries, no backoff.
// Callers own the fallback policy when a call fails.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// APIError carries a non-2xx upstream response. Message is the server's
// {"error": "..."} body when present, otherwise a generic "HTTP <status>".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the upstream API. The cookie jar holds the upstream
// session established at login, mirroring the browser's credentialed
// fetches.
type Client struct {
	base string
	http *http.Client
}

// New builds a gateway client for the given base URL. The timeout bounds a
// single attempt; there is deliberately no retry layer on top.
func New(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		base: trimSlash(baseURL),
		http: &http.Client{Timeout: timeout, Jar: jar},
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// do performs one request. Transport errors are returned untouched; non-2xx
// statuses become *APIError; 2xx bodies decode into out when provided.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFrom(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiErrorFrom(resp *http.Response) *APIError {
	msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		msg = envelope.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
