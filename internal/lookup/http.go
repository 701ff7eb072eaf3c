package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"colorsearch/internal/domain"
)

const maxErrorBody = 4 * 1024

// HTTPClient implements Service against the remote color search endpoint
type HTTPClient struct {
	baseURL    string
	searchPath string
	queryParam string
	client     *http.Client
	logger     *zap.Logger
}

// HTTPOptions configures an HTTPClient
type HTTPOptions struct {
	BaseURL    string
	SearchPath string
	QueryParam string
	Timeout    time.Duration
	Client     *http.Client // overrides Timeout when set
	Logger     *zap.Logger
}

// NewHTTPClient creates a lookup client
func NewHTTPClient(opts HTTPOptions) *HTTPClient {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	param := opts.QueryParam
	if param == "" {
		param = "firstName"
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		searchPath: opts.SearchPath,
		queryParam: param,
		client:     client,
		logger:     logger.Named("lookup"),
	}
}

// Search issues GET {base}{path}?{param}={query}
func (c *HTTPClient) Search(ctx context.Context, query string) (Response, error) {
	endpoint, err := c.endpoint(query)
	if err != nil {
		return Response{}, &LookupError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, &LookupError{Message: err.Error(), Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With(zap.String("request_id", requestID), zap.String("query", query))
	log.Debug("sending lookup request", zap.String("url", endpoint))

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("lookup request failed", zap.Error(err))
		return Response{}, &LookupError{Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := serverMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status code %d", resp.StatusCode)
		}
		log.Warn("lookup returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return Response{}, &LookupError{
			Message:    msg,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Warn("lookup returned malformed body", zap.Error(err))
		return Response{}, failure(resp.StatusCode, err, "Malformed response from color service: %v", err)
	}
	if out.Data == nil {
		out.Data = []domain.MatchRecord{}
	}

	log.Debug("lookup succeeded",
		zap.Int("count", len(out.Data)),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

func (c *HTTPClient) endpoint(query string) (string, error) {
	u, err := url.Parse(c.baseURL + c.searchPath)
	if err != nil {
		return "", fmt.Errorf("invalid lookup url: %w", err)
	}
	q := u.Query()
	q.Set(c.queryParam, query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// serverMessage extracts {"message": ...} or {"error": ...} from an error body
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "Search canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Search timed out"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() {
			return "Search timed out"
		}
		return "Network error: " + uerr.Err.Error()
	}
	return err.Error()
}
