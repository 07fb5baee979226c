package upload

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/splcricket/auction-hall/internal/platform/logging"
	"github.com/splcricket/auction-hall/internal/platform/resilience"
	"github.com/splcricket/auction-hall/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

var errStoreTransient = crerr.New("object store transient failure")

// Result is the stored object reference handed back to API clients.
type Result struct {
	Filename  string
	PublicURL string
}

type Config struct {
	BaseURL        string
	Bucket         string
	APIKey         string
	Timeout        time.Duration
	MaxObjectBytes int64
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client uploads photo and logo assets to the object store's HTTP API.
type Client struct {
	client         *http.Client
	baseURL        string
	bucket         string
	apiKey         string
	maxObjectBytes int64
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg Config, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBytes := cfg.MaxObjectBytes
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		bucket:         strings.TrimSpace(cfg.Bucket),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxObjectBytes: maxBytes,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Upload stores the object under folder/filename and returns its public URL.
// The filename is sanitized to its base name; the content type is derived
// from the extension when the caller does not supply one.
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (Result, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "object store circuit breaker rejected request", "state", c.breaker.State())
			return Result{}, fmt.Errorf("%w: object store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	baseURL, err := validateHTTPBaseURL(c.baseURL)
	if err != nil {
		return Result{}, crerr.Wrap(err, "invalid object store base url")
	}
	if c.bucket == "" {
		return Result{}, crerr.New("object store bucket is required")
	}

	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		return Result{}, fmt.Errorf("%w: filename is required", usecase.ErrInvalidInput)
	}
	folder = strings.Trim(strings.TrimSpace(folder), "/")

	objectKey := filename
	if folder != "" {
		objectKey = folder + "/" + filename
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	written, err := io.Copy(buf, io.LimitReader(content, c.maxObjectBytes+1))
	if err != nil {
		return Result{}, crerr.Wrap(err, "read upload content")
	}
	if written == 0 {
		return Result{}, fmt.Errorf("%w: upload content is empty", usecase.ErrInvalidInput)
	}
	if written > c.maxObjectBytes {
		return Result{}, fmt.Errorf("%w: upload exceeds %d bytes", usecase.ErrInvalidInput, c.maxObjectBytes)
	}

	uploadURL := baseURL + "/object/" + c.bucket + "/" + escapeObjectKey(objectKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(buf.String()))
	if err != nil {
		return Result{}, crerr.Wrap(err, "create object store request")
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: put object key=%s: %v", errStoreTransient, objectKey, err)
		c.recordCircuitResult(callErr)
		return Result{}, fmt.Errorf("%w: object store is unreachable", usecase.ErrDependencyUnavailable)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf("%w: put object key=%s status=%d body=%s",
				errStoreTransient, objectKey, resp.StatusCode, strings.TrimSpace(string(raw)))
			c.recordCircuitResult(callErr)
			return Result{}, fmt.Errorf("%w: object store returned status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
		}

		callErr := fmt.Errorf("put object key=%s status=%d body=%s",
			objectKey, resp.StatusCode, strings.TrimSpace(string(raw)))
		c.recordCircuitResult(callErr)
		return Result{}, callErr
	}

	c.recordCircuitResult(nil)
	c.logger.InfoContext(ctx, "object uploaded", "key", objectKey, "bytes", written)

	return Result{
		Filename:  filename,
		PublicURL: baseURL + "/object/public/" + c.bucket + "/" + escapeObjectKey(objectKey),
	}, nil
}

func escapeObjectKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errStoreTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
