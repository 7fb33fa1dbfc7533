package mediastore

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/profootgn/league-api/internal/platform/logging"
	"github.com/profootgn/league-api/internal/platform/resilience"
)

var errMediaTransient = crerr.New("media store transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client uploads player portraits to the media store over HTTP. It satisfies
// the photo uploader port of the player service.
type Client struct {
	client         *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
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
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadPlayerPhoto sends the portrait as a multipart form and returns the
// public URL the store assigned to it.
func (c *Client) UploadPlayerPhoto(ctx context.Context, playerID int64, filename, contentType string, body io.Reader) (string, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "media store circuit breaker rejected request", "state", c.breaker.State())
			return "", fmt.Errorf("media store is temporarily unavailable: %w", err)
		}
	}

	baseURL, err := validateHTTPBaseURL(c.baseURL)
	if err != nil {
		return "", crerr.Wrap(err, "invalid MEDIA_BASE_URL")
	}
	uploadURL := baseURL + "/v1/player-photos/" + strconv.FormatInt(playerID, 10)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	form := multipart.NewWriter(buf)
	part, err := form.CreateFormFile("photo", strings.TrimSpace(filename))
	if err != nil {
		return "", crerr.Wrap(err, "create form file")
	}
	if _, err := io.Copy(part, body); err != nil {
		return "", crerr.Wrap(err, "copy photo body")
	}
	if contentType != "" {
		if err := form.WriteField("content_type", contentType); err != nil {
			return "", crerr.Wrap(err, "write content type field")
		}
	}
	if err := form.Close(); err != nil {
		return "", crerr.Wrap(err, "close multipart form")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("mediastore.upload_url", uploadURL),
			attribute.Int64("mediastore.player_id", playerID),
			attribute.Int("mediastore.body_size", buf.Len()),
		)
	}
	c.logger.InfoContext(ctx, "media store upload request",
		"player_id", playerID,
		"filename", filename,
		"body_size", buf.Len(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(buf.String()))
	if err != nil {
		return "", crerr.Wrap(err, "create media store request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: upload photo player=%d url=%s: %v", errMediaTransient, playerID, uploadURL, err)
		c.recordCircuitResult(callErr)
		return "", callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode/100 != 2 {
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf(
				"%w: upload photo status=%d player=%d url=%s body=%s",
				errMediaTransient,
				resp.StatusCode,
				playerID,
				uploadURL,
				strings.TrimSpace(string(raw)),
			)
			c.recordCircuitResult(callErr)
			return "", callErr
		}

		callErr := fmt.Errorf(
			"upload photo status=%d player=%d url=%s body=%s",
			resp.StatusCode,
			playerID,
			uploadURL,
			strings.TrimSpace(string(raw)),
		)
		c.recordCircuitResult(callErr)
		return "", callErr
	}

	var parsed uploadResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		c.recordCircuitResult(nil)
		return "", crerr.Wrap(err, "decode media store response")
	}
	if strings.TrimSpace(parsed.URL) == "" {
		c.recordCircuitResult(nil)
		return "", crerr.New("media store response has no url")
	}

	c.logger.InfoContext(ctx, "player photo uploaded", "player_id", playerID, "url", parsed.URL)
	c.recordCircuitResult(nil)
	return parsed.URL, nil
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
	if stderrors.Is(err, errMediaTransient) {
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
