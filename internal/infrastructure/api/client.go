package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"golang.org/x/net/publicsuffix"
)

const maxResponseBytes = 4 << 20

// Client talks to the storefront REST API. All calls carry the session
// cookies held in the client's cookie jar.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *logrus.Logger
}

// NewClient creates an API client with its own cookie jar
func NewClient(cfg config.APIConfig, logger *logrus.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:   base,
		http:      &http.Client{Jar: jar, Timeout: timeout},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}, nil
}

// Cookies returns the cookies the jar would send to the API
func (c *Client) Cookies() []*http.Cookie {
	return c.http.Jar.Cookies(c.baseURL)
}

// envelope is the common response shape: {success, message, ...payload}
type envelope struct {
	Success bool
	Message string
	Fields  map[string]json.RawMessage
}

func (e *envelope) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &e.Fields); err != nil {
		return err
	}
	if raw, ok := e.Fields["success"]; ok {
		if err := json.Unmarshal(raw, &e.Success); err != nil {
			return fmt.Errorf("invalid success flag: %w", err)
		}
	}
	if raw, ok := e.Fields["message"]; ok {
		// A non-string message is ignored rather than failing the call.
		_ = json.Unmarshal(raw, &e.Message)
	}
	return nil
}

// call performs one request and decodes the payload stored under key. An
// empty key means the call carries no payload.
func call[T any](ctx context.Context, c *Client, method, path string, body any, key string) Result[T] {
	var res Result[T]

	env, status, err := c.do(ctx, method, path, body)
	if err != nil {
		res.Status = StatusTransient
		res.Err = err
		if env != nil {
			res.Message = env.Message
		}
		return res
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		res.Status = StatusUnauthorized
		res.Message = env.Message
		return res
	}

	res.Message = env.Message
	if !env.Success {
		res.Status = StatusRejected
		return res
	}

	if key == "" {
		res.Status = StatusEmpty
		return res
	}

	raw, ok := env.Fields[key]
	if !ok || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		res.Status = StatusEmpty
		return res
	}

	if err := json.Unmarshal(raw, &res.Data); err != nil {
		res.Status = StatusTransient
		res.Err = fmt.Errorf("failed to decode %q from %s %s: %w", key, method, path, err)
		return res
	}

	res.Status = StatusOK
	return res
}

// do sends the request. A non-nil error means no usable envelope was
// received; an envelope is still returned when the body could be decoded.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     method,
			"path":       path,
		}).WithError(err).Warn("API request failed")
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"latency":     time.Since(start),
	}).Debug("API request completed")

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	env := &envelope{}
	decodeErr := json.Unmarshal(data, env)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if decodeErr != nil {
			return nil, resp.StatusCode, fmt.Errorf("malformed response from %s %s: %w", method, path, decodeErr)
		}
		return env, resp.StatusCode, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return env, resp.StatusCode, nil
	case resp.StatusCode < 500 && decodeErr == nil && env.Fields["success"] != nil:
		// 4xx with an explicit envelope is a rejection, not a transport failure.
		return env, resp.StatusCode, nil
	default:
		if decodeErr != nil {
			env = nil
		}
		return env, resp.StatusCode, &StatusError{Code: resp.StatusCode}
	}
}

// StatusError reports an HTTP status the client could not interpret
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// IsStatus reports whether err carries the given HTTP status
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
