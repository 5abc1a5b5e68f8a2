// internal/adapters/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

const (
	apiPrefix       = "/api/v1"
	maxResponseSize = 10 << 20
)

// APIError is a non-2xx response from the games backend
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Is lets callers match a 404 against domain.ErrNotFound
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Config holds client settings
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client talks to the games backend over REST
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

var _ ports.BackendAPI = (*Client)(nil)

// NewClient creates a backend client. A zero rate disables throttling.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + apiPrefix,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger.With(slog.String("component", "backend_client")),
	}
}

// Games

func (c *Client) ListGames(ctx context.Context, params domain.ListParams) (*domain.Page[domain.Game], error) {
	var page domain.Page[domain.Game]
	if err := c.do(ctx, http.MethodGet, "/games", listQuery(params), nil, &page); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return &page, nil
}

func (c *Client) DeleteGame(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/games/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("delete game %d: %w", id, err)
	}
	return nil
}

func (c *Client) LastGamesSync(ctx context.Context) (*domain.SyncLog, error) {
	var last *domain.SyncLog
	if err := c.do(ctx, http.MethodGet, "/games/last-sync", nil, nil, &last); err != nil {
		return nil, fmt.Errorf("last games sync: %w", err)
	}
	return last, nil
}

// Sales

func (c *Client) ListSales(ctx context.Context, params domain.ListParams) (*domain.Page[domain.Sale], error) {
	var page domain.Page[domain.Sale]
	if err := c.do(ctx, http.MethodGet, "/sales", listQuery(params), nil, &page); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return &page, nil
}

func (c *Client) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodGet, salePath(id), nil, nil, &sale); err != nil {
		return nil, fmt.Errorf("get sale %d: %w", id, err)
	}
	return &sale, nil
}

func (c *Client) CreateSale(ctx context.Context, payload domain.SalePayload) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodPost, "/sales", nil, payload, &sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}
	return &sale, nil
}

func (c *Client) UpdateSale(ctx context.Context, id int64, payload domain.SalePayload) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodPatch, salePath(id), nil, payload, &sale); err != nil {
		return nil, fmt.Errorf("update sale %d: %w", id, err)
	}
	return &sale, nil
}

func (c *Client) DeleteSale(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, salePath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}
	return nil
}

// Sync

func (c *Client) TriggerSync(ctx context.Context, limit int) (*domain.SyncTrigger, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var trigger domain.SyncTrigger
	if err := c.do(ctx, http.MethodPost, "/sync/games", q, nil, &trigger); err != nil {
		return nil, err
	}
	return &trigger, nil
}

func (c *Client) TriggerSyncAll(ctx context.Context) (*domain.SyncTrigger, error) {
	var trigger domain.SyncTrigger
	if err := c.do(ctx, http.MethodPost, "/sync/games/all", nil, nil, &trigger); err != nil {
		return nil, err
	}
	return &trigger, nil
}

func (c *Client) SyncStatus(ctx context.Context, taskID string) (*domain.SyncStatus, error) {
	var status domain.SyncStatus
	if err := c.do(ctx, http.MethodGet, "/sync/status/"+url.PathEscape(taskID), nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) LastSync(ctx context.Context) (*domain.SyncLog, error) {
	var last *domain.SyncLog
	if err := c.do(ctx, http.MethodGet, "/sync/last", nil, nil, &last); err != nil {
		return nil, fmt.Errorf("last sync: %w", err)
	}
	return last, nil
}

// Dashboard

func (c *Client) Summary(ctx context.Context) (*domain.Summary, error) {
	var s domain.Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, nil, &s); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

func (c *Client) PriceRangeByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceRangeByGenre, error) {
	return getRows[domain.PriceRangeByGenre](ctx, c, "price-range-by-genre", rangeQuery(r))
}

func (c *Client) GamesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.GamesByDate, error) {
	return getRows[domain.GamesByDate](ctx, c, "games-by-date", rangeQuery(r))
}

func (c *Client) AvgRatingByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.AvgRatingByGenre, error) {
	return getRows[domain.AvgRatingByGenre](ctx, c, "avg-rating-by-genre", rangeQuery(r))
}

func (c *Client) PriceGapByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceGapByGenre, error) {
	return getRows[domain.PriceGapByGenre](ctx, c, "price-gap-by-genre", rangeQuery(r))
}

func (c *Client) SalesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.SalesByDate, error) {
	return getRows[domain.SalesByDate](ctx, c, "sales-by-date", rangeQuery(r))
}

func (c *Client) MaxPriceByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.MaxPriceByDate, error) {
	return getRows[domain.MaxPriceByDate](ctx, c, "max-price-by-date", rangeQuery(r))
}

func (c *Client) PriceRatio(ctx context.Context, genre string) ([]domain.PriceRatioItem, error) {
	q := url.Values{}
	if genre != "" {
		q.Set("genre", genre)
	}
	return getRows[domain.PriceRatioItem](ctx, c, "price-ratio", q)
}

func getRows[T any](ctx context.Context, c *Client, endpoint string, q url.Values) ([]T, error) {
	var rows []T
	if err := c.do(ctx, http.MethodGet, "/dashboard/"+endpoint, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("dashboard %s: %w", endpoint, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// do performs one request. A nil out discards the body; a 204 leaves out
// untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// newAPIError prefers the backend's detail field, then the raw JSON body,
// then the bare status.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Detail: fmt.Sprintf("HTTP %d", status)}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return apiErr
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil && len(payload.Detail) > 0 && string(payload.Detail) != "null" {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			apiErr.Detail = s
		} else {
			apiErr.Detail = string(payload.Detail)
		}
		return apiErr
	}

	apiErr.Detail = string(trimmed)
	return apiErr
}

// IsAPIError unwraps err into an *APIError
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func listQuery(p domain.ListParams) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Genre != "" {
		q.Set("genre", p.Genre)
	}
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	if p.SortDir != "" {
		q.Set("sort_dir", string(p.SortDir))
	}
	return q
}

func rangeQuery(r domain.AnalyticsRange) url.Values {
	q := url.Values{}
	if r.From != "" {
		q.Set("date_from", r.From)
	}
	if r.To != "" {
		q.Set("date_to", r.To)
	}
	return q
}

func salePath(id int64) string {
	return "/sales/" + strconv.FormatInt(id, 10)
}
