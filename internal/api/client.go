package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"rickdex/internal/domain"
)

// ErrNoResults is returned when the server answers without a results list
var ErrNoResults = errors.New("no results")

// StatusError reports an HTTP status the client does not understand
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the character REST API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client rooted at baseURL (e.g. https://rickandmortyapi.com/api)
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("api"),
	}, nil
}

type pageInfo struct {
	Count int `json:"count"`
	Pages int `json:"pages"`
}

type characterResponse struct {
	Info    pageInfo            `json:"info"`
	Results *[]domain.Character `json:"results"`
	Error   string              `json:"error"`
}

type locationResponse struct {
	Info    pageInfo           `json:"info"`
	Results *[]domain.Location `json:"results"`
	Error   string             `json:"error"`
}

// SearchCharacters fetches one page of characters whose name contains name.
// Page is 1-based; values below 1 are sent as 1. Returns ErrNoResults when
// the server reports nothing matching.
func (c *Client) SearchCharacters(ctx context.Context, name string, page int) (domain.CharacterPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("name", name)
	q.Set("page", strconv.Itoa(page))

	var resp characterResponse
	if err := c.get(ctx, "character/", q, &resp); err != nil {
		return domain.CharacterPage{}, err
	}
	if resp.Results == nil || len(*resp.Results) == 0 {
		return domain.CharacterPage{}, ErrNoResults
	}
	return domain.CharacterPage{
		Characters: *resp.Results,
		Pages:      resp.Info.Pages,
		Count:      resp.Info.Count,
	}, nil
}

// SuggestNames returns up to limit names of characters matching prefix, in server order
func (c *Client) SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("name", prefix)

	var resp characterResponse
	if err := c.get(ctx, "character/", q, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, ErrNoResults
	}

	results := *resp.Results
	if len(results) > limit {
		results = results[:limit]
	}
	names := make([]string, 0, len(results))
	for _, ch := range results {
		names = append(names, ch.Name)
	}
	return names, nil
}

// SampleCharacters fetches the first unfiltered page of characters
func (c *Client) SampleCharacters(ctx context.Context) ([]domain.Character, error) {
	var resp characterResponse
	if err := c.get(ctx, "character", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, ErrNoResults
	}
	return *resp.Results, nil
}

// Locations fetches the first page of the location listing
func (c *Client) Locations(ctx context.Context) ([]domain.Location, error) {
	var resp locationResponse
	if err := c.get(ctx, "location", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, ErrNoResults
	}
	return *resp.Results, nil
}

// get performs a GET and decodes the JSON body into out. A 404 carrying a
// JSON error body is decoded like a 200 so callers can detect "no results".
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL.JoinPath(path)
	// JoinPath drops a trailing slash on the element; the API accepts both forms
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", u.Path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		zap.String("url", u.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode == http.StatusNotFound {
			return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// truncate shortens s to n runes
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
