package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseBytes = 4 << 20

type HTTPTransport struct {
	endpoint string
	http     *http.Client
}

type HTTPOption func(*HTTPTransport)

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTPTransport) {
		if c != nil {
			t.http = c
		}
	}
}

func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		if d > 0 {
			// копия, чтобы не менять чужой (например, http.DefaultClient)
			c := *t.http
			c.Timeout = d
			t.http = &c
		}
	}
}

// NewHTTPTransport posts requests to {baseURL}/jsonrpc.
func NewHTTPTransport(baseURL string, opts ...HTTPOption) (*HTTPTransport, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("baseURL must not be empty")
	}
	t := &HTTPTransport{
		endpoint: strings.TrimRight(baseURL, "/") + "/jsonrpc",
		http:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

func (t *HTTPTransport) Call(ctx context.Context, req *Message) (*Message, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &NetworkError{Op: req.Method, Err: err}
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &NetworkError{Op: req.Method, Err: err}
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")

	resp, err := t.http.Do(hreq)
	if err != nil {
		return nil, &NetworkError{Op: req.Method, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &NetworkError{Op: req.Method, Err: err}
	}
	msg, perr := Parse(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// отказ приложения может прийти и с не-2xx статусом
		if perr == nil && msg.Error != nil {
			return msg, nil
		}
		return nil, &NetworkError{Op: req.Method, Err: fmt.Errorf("http status %d", resp.StatusCode)}
	}
	if perr != nil {
		return nil, &NetworkError{Op: req.Method, Err: perr}
	}
	return msg, nil
}
