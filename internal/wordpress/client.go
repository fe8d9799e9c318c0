package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client provides read-only access to a WordPress site's REST API.
// Each operation performs exactly one HTTP GET; there are no retries,
// no caching, and no shared mutable state, so a single Client is safe
// for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// NewClient creates a new WordPress API client for the configured site
func NewClient(config *Config, opts ...ClientOption) *Client {
	c := &Client{
		config:     config,
		httpClient: newHTTPClient(config.Timeout),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// newHTTPClient creates an HTTP client with connection pooling
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// endpointURL builds a full URL for a path under the site root,
// e.g. endpointURL("/wp-json/wp/v2/posts", params)
func (c *Client) endpointURL(path string, params url.Values) string {
	u := c.config.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// fetch issues a single GET request and returns the decoded JSON value.
// A non-2xx status yields *HTTPStatusError; a 2xx body that is not valid
// JSON yields *InvalidJSONError. The two are distinct types so callers can
// tell "server said no" from "server lied about success".
func (c *Client) fetch(ctx context.Context, reqURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", reqURL, err)
	}

	body, err := readAndClose(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", reqURL, err)
	}

	c.logger.Debug("WordPress API request",
		"url", reqURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        reqURL,
			Body:       string(body),
		}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &InvalidJSONError{URL: reqURL, Body: string(body)}
	}

	return decoded, nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// fetchObject fetches a URL expected to return a single JSON object
func (c *Client) fetchObject(ctx context.Context, reqURL, entity string) (map[string]any, error) {
	decoded, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &MalformedPayloadError{Entity: entity}
	}
	return obj, nil
}

// fetchList fetches a URL expected to return a JSON array of objects
func (c *Client) fetchList(ctx context.Context, reqURL, entity string) ([]map[string]any, error) {
	decoded, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	items, ok := decoded.([]any)
	if !ok {
		return nil, &MalformedPayloadError{Entity: entity + " list"}
	}

	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &MalformedPayloadError{Entity: entity}
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// GetSiteInfo retrieves basic site information from /wp-json
func (c *Client) GetSiteInfo(ctx context.Context) (SiteInfo, error) {
	raw, err := c.fetchObject(ctx, c.endpointURL("/wp-json", nil), "site info")
	if err != nil {
		return SiteInfo{}, err
	}
	return ShapeSiteInfo(raw)
}

// GetPosts retrieves a page of posts
func (c *Client) GetPosts(ctx context.Context, page, perPage int) ([]PostSummary, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	return c.getPostList(ctx, "/wp-json/wp/v2/posts", params)
}

// GetPostsByCategory retrieves a page of posts filtered by category.
// The categories value is passed through to the API verbatim; WordPress
// expects one or more term ids, comma separated.
func (c *Client) GetPostsByCategory(ctx context.Context, categories string, page int) ([]PostSummary, error) {
	params := url.Values{}
	params.Set("categories", categories)
	params.Set("page", strconv.Itoa(page))
	return c.getPostList(ctx, "/wp-json/wp/v2/posts", params)
}

// GetPages retrieves a page of pages (same shape as posts)
func (c *Client) GetPages(ctx context.Context, page, perPage int) ([]PostSummary, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	return c.getPostList(ctx, "/wp-json/wp/v2/pages", params)
}

// GetPost retrieves a single post by ID. An unknown ID surfaces as the
// remote 404 wrapped in *HTTPStatusError; no range check is done locally.
func (c *Client) GetPost(ctx context.Context, id int) (PostSummary, error) {
	raw, err := c.fetchObject(ctx, c.endpointURL("/wp-json/wp/v2/posts/"+strconv.Itoa(id), nil), "post")
	if err != nil {
		return PostSummary{}, err
	}
	return ShapePost(raw)
}

// GetPage retrieves a single page by ID
func (c *Client) GetPage(ctx context.Context, id int) (PostSummary, error) {
	raw, err := c.fetchObject(ctx, c.endpointURL("/wp-json/wp/v2/pages/"+strconv.Itoa(id), nil), "post")
	if err != nil {
		return PostSummary{}, err
	}
	return ShapePost(raw)
}

// GetCategories retrieves the category list
func (c *Client) GetCategories(ctx context.Context) ([]CategorySummary, error) {
	raw, err := c.fetchList(ctx, c.endpointURL("/wp-json/wp/v2/categories", nil), "category")
	if err != nil {
		return nil, err
	}

	categories := make([]CategorySummary, 0, len(raw))
	for _, obj := range raw {
		category, err := ShapeCategory(obj)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// getPostList fetches and shapes a list endpoint of post-like objects.
// Shaping is fail-fast: one malformed item fails the whole call.
func (c *Client) getPostList(ctx context.Context, path string, params url.Values) ([]PostSummary, error) {
	raw, err := c.fetchList(ctx, c.endpointURL(path, params), "post")
	if err != nil {
		return nil, err
	}

	posts := make([]PostSummary, 0, len(raw))
	for _, obj := range raw {
		post, err := ShapePost(obj)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
