package wordpress

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

// newTestClient creates a client pointed at a mock server
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := &Config{
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
		UserAgent: DefaultUserAgent,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(config, WithLogger(logger))
}

func TestNewClient(t *testing.T) {
	config := &Config{BaseURL: "https://example.com", Timeout: DefaultTimeout, UserAgent: DefaultUserAgent}
	client := NewClient(config)

	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	if client.httpClient == nil {
		t.Error("httpClient is nil")
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}
	config := &Config{BaseURL: "https://example.com", Timeout: DefaultTimeout, UserAgent: DefaultUserAgent}
	client := NewClient(config, WithHTTPClient(customHTTPClient))

	if client.httpClient != customHTTPClient {
		t.Error("custom HTTP client was not set")
	}
}

func TestFetch_UserAgent(t *testing.T) {
	var gotUserAgent string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	}))

	if _, err := client.fetch(context.Background(), client.config.BaseURL+"/wp-json"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotUserAgent != "wordpress-app/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, "wordpress-app/1.0")
	}
}

func TestFetch_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"rest_post_invalid_id"}`))
	}))

	_, err := client.fetch(context.Background(), client.config.BaseURL+"/wp-json/wp/v2/posts/999")
	if err == nil {
		t.Fatal("expected error for 404, got nil")
	}

	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *HTTPStatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", statusErr.StatusCode)
	}
	if !IsTransportError(err) {
		t.Error("IsTransportError should be true")
	}
	if IsPayloadError(err) {
		t.Error("IsPayloadError should be false for a status failure")
	}
}

func TestFetch_InvalidJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))

	reqURL := client.config.BaseURL + "/wp-json"
	_, err := client.fetch(context.Background(), reqURL)
	if err == nil {
		t.Fatal("expected error for non-JSON body, got nil")
	}

	// Must be a payload failure, distinct from the HTTP status kind
	var jsonErr *InvalidJSONError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("expected *InvalidJSONError, got %T: %v", err, err)
	}
	if jsonErr.URL != reqURL {
		t.Errorf("error URL = %q, want %q", jsonErr.URL, reqURL)
	}
	if jsonErr.Body != "<html>not json</html>" {
		t.Errorf("error body = %q, want raw body", jsonErr.Body)
	}
	if IsTransportError(err) {
		t.Error("IsTransportError should be false for invalid JSON")
	}
	if !IsPayloadError(err) {
		t.Error("IsPayloadError should be true")
	}
}

func TestGetSiteInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"name":"Demo","description":"Tagline","url":"https://example.com","namespaces":["wp/v2"]}`))
	}))

	info, err := client.GetSiteInfo(context.Background())
	if err != nil {
		t.Fatalf("GetSiteInfo failed: %v", err)
	}

	want := SiteInfo{Name: "Demo", Description: "Tagline", URL: "https://example.com"}
	if info != want {
		t.Errorf("GetSiteInfo() = %+v, want %+v", info, want)
	}
}

const twoPostsBody = `[
	{"id":10,"date":"2024-03-01T10:00:00","link":"https://example.com/a","title":{"rendered":"Post A"},"content":{"rendered":"<p>A</p>"},"featured_media":3},
	{"id":11,"date":"2024-03-02T11:00:00","link":"https://example.com/b","title":{"rendered":"Post B"},"content":{"rendered":"<p>B</p>"},"featured_media":0}
]`

func TestGetPosts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("page = %q, want %q", got, "1")
		}
		if got := r.URL.Query().Get("per_page"); got != "2" {
			t.Errorf("per_page = %q, want %q", got, "2")
		}
		_, _ = w.Write([]byte(twoPostsBody))
	}))

	posts, err := client.GetPosts(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("GetPosts failed: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].ID != 10 || posts[1].ID != 11 {
		t.Errorf("post ids = %d, %d, want 10, 11", posts[0].ID, posts[1].ID)
	}
	if posts[0].Title != "Post A" {
		t.Errorf("title = %q, want %q", posts[0].Title, "Post A")
	}
	if posts[0].Content != "<p>A</p>" {
		t.Errorf("content = %q, want %q", posts[0].Content, "<p>A</p>")
	}
}

func TestGetPosts_FailFastOnMalformedItem(t *testing.T) {
	// Second item is missing its title; the whole call must fail,
	// not return a partial list
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":10,"date":"d","link":"l","title":{"rendered":"T"},"content":{"rendered":"C"},"featured_media":0},
			{"id":11,"date":"d","link":"l","content":{"rendered":"C"},"featured_media":0}
		]`))
	}))

	posts, err := client.GetPosts(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected error for malformed item, got nil")
	}
	if posts != nil {
		t.Errorf("expected nil result on failure, got %d posts", len(posts))
	}

	var payloadErr *MalformedPayloadError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("expected *MalformedPayloadError, got %T", err)
	}
	if payloadErr.Key != "title" {
		t.Errorf("error key = %q, want %q", payloadErr.Key, "title")
	}
}

func TestGetPostsByCategory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("categories"); got != "5" {
			t.Errorf("categories = %q, want %q", got, "5")
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want %q", got, "2")
		}
		_, _ = w.Write([]byte(twoPostsBody))
	}))

	posts, err := client.GetPostsByCategory(context.Background(), "5", 2)
	if err != nil {
		t.Fatalf("GetPostsByCategory failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("got %d posts, want 2", len(posts))
	}
}

func TestGetCategories(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/categories" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"News","count":5,"link":"https://x/cat/news"}]`))
	}))

	categories, err := client.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}

	want := []CategorySummary{{ID: 1, Name: "News", Count: 5, Link: "https://x/cat/news"}}
	if len(categories) != 1 || categories[0] != want[0] {
		t.Errorf("GetCategories() = %+v, want %+v", categories, want)
	}
}

func TestGetPost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":42,"date":"2024-03-01T10:00:00","link":"https://example.com/a","title":{"rendered":"Post A"},"content":{"rendered":"<p>A</p>"},"featured_media":3}`))
	}))

	post, err := client.GetPost(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post.ID != 42 || post.Title != "Post A" {
		t.Errorf("GetPost() = %+v", post)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"rest_post_invalid_id","message":"Invalid post ID."}`))
	}))

	_, err := client.GetPost(context.Background(), 999)
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *HTTPStatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", statusErr.StatusCode)
	}
}

func TestGetPages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/pages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(twoPostsBody))
	}))

	pages, err := client.GetPages(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("GetPages failed: %v", err)
	}
	if len(pages) != 2 {
		t.Errorf("got %d pages, want 2", len(pages))
	}
}

func TestGetPage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/pages/7" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":7,"date":"2024-01-01T00:00:00","link":"https://example.com/about","title":{"rendered":"About"},"content":{"rendered":"<p>About us.</p>"},"featured_media":0}`))
	}))

	page, err := client.GetPage(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if page.ID != 7 || page.Title != "About" {
		t.Errorf("GetPage() = %+v", page)
	}
}

func TestFetch_TopLevelNotObject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	}))

	_, err := client.GetSiteInfo(context.Background())
	var payloadErr *MalformedPayloadError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("expected *MalformedPayloadError, got %T: %v", err, err)
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.fetch(ctx, client.config.BaseURL+"/wp-json"); err == nil {
		t.Error("expected error for canceled context")
	}
}
