package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"peminjaman/internal/config"
	"peminjaman/pkg/apierr"

	"go.uber.org/zap"
)

// Client talks to the BUF backend. Every response is expected in the
// {status, message, data} envelope; anything else is surfaced uniformly as a
// recoverable OperationFailed with a displayable message.
type Client struct {
	baseURL        string
	http           *http.Client
	log            *zap.Logger
	tokenSource    func() string
	onUnauthorized func()
}

func NewClient(cfg config.API, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// SetTokenSource registers the callback supplying the bearer token. An empty
// return means the request goes out unauthenticated.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

// OnUnauthorized registers the hook fired on a 401 response, before the error
// is returned to the caller. The session layer uses it to clear stale
// credentials.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, requestID string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return apierr.NewOperationFailed("gagal menyiapkan permintaan", 0, err)
		}
		reader = b
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apierr.NewOperationFailed("gagal menyiapkan permintaan", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return apierr.NewOperationFailed("gagal menghubungi server", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apierr.NewOperationFailed("sesi berakhir, silakan login kembali", resp.StatusCode, nil)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return apierr.NewOperationFailed(
			fmt.Sprintf("respon server tidak dikenali (HTTP %d)", resp.StatusCode), resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 || env.Status != "success" {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("permintaan gagal (HTTP %d)", resp.StatusCode)
		}
		return apierr.NewOperationFailed(message, resp.StatusCode, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apierr.NewOperationFailed("gagal membaca data dari server", resp.StatusCode, err)
		}
	}
	return nil
}

// doRaw fetches a non-envelope payload (CSV exports). Error responses still
// arrive enveloped and are mapped the same way do maps them.
func (c *Client) doRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, apierr.NewOperationFailed("gagal menyiapkan permintaan", 0, err)
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierr.NewOperationFailed("gagal menghubungi server", 0, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NewOperationFailed("gagal membaca data dari server", resp.StatusCode, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, apierr.NewOperationFailed("sesi berakhir, silakan login kembali", resp.StatusCode, nil)
	}
	if resp.StatusCode >= 400 {
		var env envelope
		message := fmt.Sprintf("permintaan gagal (HTTP %d)", resp.StatusCode)
		if err := json.Unmarshal(payload, &env); err == nil && env.Message != "" {
			message = env.Message
		}
		return nil, apierr.NewOperationFailed(message, resp.StatusCode, nil)
	}
	return payload, nil
}
