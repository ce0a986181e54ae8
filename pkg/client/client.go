// Package client کلاینت تایپ‌شده برای API پست‌ها
package client

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

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	// فقط خواندن‌ها تکرار می‌شوند؛ نوشتن‌ها یک بار ارسال می‌شوند
	reads  *retryablehttp.Client
	writes *retryablehttp.Client
}

type options struct {
	retries    int
	timeout    time.Duration
	logger     *zap.Logger
	httpClient *http.Client
}

type Option func(*options)

func WithRetries(n int) Option { return func(o *options) { o.retries = n } }

func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

func WithHTTPClient(c *http.Client) Option { return func(o *options) { o.httpClient = c } }

func New(baseURL string, opts ...Option) *Client {
	o := options{retries: 2, timeout: 10 * time.Second, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		reads:   newTransport(o, o.retries),
		writes:  newTransport(o, 0),
	}
}

func newTransport(o options, retries int) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retries
	c.RetryWaitMin = 50 * time.Millisecond
	c.RetryWaitMax = time.Second
	c.Logger = leveledZap{o.logger.Sugar()}
	// آخرین پاسخ به جای خطای "giving up" برگردانده شود
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if o.httpClient != nil {
		c.HTTPClient = o.httpClient
	} else {
		c.HTTPClient.Timeout = o.timeout
	}
	return c
}

func (c *Client) CreatePost(ctx context.Context, s *Session, in CreatePostInput) (*Post, error) {
	var out Post
	if err := c.call(ctx, s, true, http.MethodPost, "/api/posts/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPost بدون نیاز به ورود
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var out Post
	if err := c.call(ctx, nil, false, http.MethodGet, "/api/posts/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyPosts(ctx context.Context, s *Session) ([]Post, error) {
	var out []Post
	if err := c.call(ctx, s, true, http.MethodGet, "/api/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdatePost(ctx context.Context, s *Session, id string, in UpdatePostInput) (*Post, error) {
	var out Post
	if err := c.call(ctx, s, true, http.MethodPut, "/api/posts/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, s *Session, id string) error {
	return c.call(ctx, s, true, http.MethodDelete, "/api/posts/"+url.PathEscape(id), nil, nil)
}

func (c *Client) call(ctx context.Context, s *Session, needsAuth bool, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var rawBody interface{}
	if body != nil {
		rawBody = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, rawBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if needsAuth {
		token, ok := s.Token()
		if !ok {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	transport := c.writes
	if method == http.MethodGet {
		transport = c.reads
	}
	resp, err := transport.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 300 || !env.Status {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// leveledZap آداپتر zap برای retryablehttp.LeveledLogger
type leveledZap struct{ s *zap.SugaredLogger }

func (l leveledZap) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledZap) Info(msg string, kv ...interface{}) { l.s.Infow(msg, kv...) }
func (l leveledZap) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveledZap) Warn(msg string, kv ...interface{}) { l.s.Warnw(msg, kv...) }
