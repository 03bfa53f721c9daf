package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const userAgent = "streamix/1.0 (+https://github.com/alexisbeaulieu97/streamix)"

// HTTPStatusError reports a non-2xx response from an upstream.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// DefaultHTTPClient returns the client used when none is injected.
// No Timeout is set; requests end with the transport or the context.
func DefaultHTTPClient() *http.Client {
	return &http.Client{}
}

// GetBody issues a GET and returns the body of a 2xx response.
func GetBody(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if client == nil {
		client = DefaultHTTPClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPStatusError{URL: redactedURL(req), StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// GetJSON issues a GET and decodes a 2xx JSON body into dst.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	body, err := GetBody(ctx, client, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// redactedURL strips the query so API keys never reach logs or error messages.
func redactedURL(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}
