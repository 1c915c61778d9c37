// Package backend is the single entry point for outbound calls to the
// marketplace REST API. Every response is either decoded into the caller's
// type or normalized into an AppError from the closed taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vamm99/moterplace/internal/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// errorBody is the error shape the backend sends. Message is usually a
// string but validation failures carry an array.
type errorBody struct {
	Message json.RawMessage `json:"message"`
}

func (e *errorBody) messageText() string {
	if len(e.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(e.Message, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(e.Message, &many); err == nil {
		return strings.Join(many, "; ")
	}

	return ""
}

// do performs a request against baseURL+endpoint. The bearer header is set
// only when token is non-empty; out may be nil when the caller discards the
// body. Stock and prices change constantly, so intermediaries are told not
// to cache.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, token string, out any) error {

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode request body").WithError(err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return errors.InternalError("Failed to build backend request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.TransportError("Could not reach the server").WithError(err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.TransportError("Could not read the server response").WithError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.protocolError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.InternalError("Unexpected response from the server").
			WithDetail(truncate(string(raw), 512)).
			WithError(err)
	}

	return nil
}

// protocolError maps a non-2xx response to a BackendError. The message is
// drawn from the body's message field, else the raw text, else the status
// phrase.
func (c *Client) protocolError(statusCode int, raw []byte) error {

	message := http.StatusText(statusCode)

	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if text := parsed.messageText(); text != "" {
			message = text
		}
	} else if text := strings.TrimSpace(string(raw)); text != "" {
		message = truncate(text, 512)
	}

	return errors.BackendError(fmt.Sprintf("Error %d from the API: %s", statusCode, message), statusCode)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit]
}

func (c *Client) Get(ctx context.Context, endpoint, token string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, token, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, token, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, token, out)
}

func (c *Client) Delete(ctx context.Context, endpoint, token string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, token, out)
}
