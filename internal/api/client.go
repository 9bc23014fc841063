// Package api is the HTTP client for the demo dashboard JSON API.
//
// Every authenticated request reads the credential store at send time and
// attaches the stored token as a Bearer header, so a logout that races an
// in-flight poll simply turns the pending response into an auth failure.
// There is no retry policy and no request timeout: failures are either
// surfaced as typed errors or logged and swallowed by the caller, and a
// hung request stays pending while the view keeps its last render.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/demodash/internal/model"
)

// CredentialSource supplies the current session credential, if any.
type CredentialSource interface {
	Get() (model.Credential, bool)
}

// Client is a thin HTTP client for the dashboard REST API.
type Client struct {
	baseURL    string
	creds      CredentialSource
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the API rooted at baseURL. Credentials
// are read from creds on every request.
func NewClient(baseURL string, creds CredentialSource, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		// No Timeout: a request that hangs never resolves and the
		// affected view shows stale data until the program exits.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// do builds the request, attaches the stored token, and decodes the JSON
// response into result. A non-2xx status on an authenticated call is
// returned as *AuthError; transport failures are logged and wrapped.
func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body interface{},
	result interface{},
) error {
	resp, respBody, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthError{StatusCode: resp.StatusCode, Path: path}
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshaling response from %s %s: %w", method, path, err)
	}

	return nil
}

// send issues a single request and reads the full response body. It does
// not interpret the status code; callers decide what non-2xx means.
func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	body interface{},
) (*http.Response, []byte, error) {
	url := c.baseURL + path
	requestID := uuid.NewString()

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred, ok := c.creds.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}

	c.logger.Debug("api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: log and hand back; callers leave
		// the previous render in place.
		c.logger.Warn("api request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, nil, fmt.Errorf("executing request %s %s: %w", method, path, err)
	}

	respBody, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		c.logger.Warn("api response read failed",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(readErr),
		)
		return nil, nil, fmt.Errorf("reading response body: %w", readErr)
	}

	c.logger.Debug("api response",
		zap.String("request_id", requestID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	return resp, respBody, nil
}
