// Command benchmark measures request latency against a live WordPress site.
// It requires WORDPRESS_URL to be set and performs only read requests.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gopalcnepal/mcp-wordpress/internal/wordpress"
)

func newClient() (*wordpress.Client, error) {
	config, err := wordpress.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return wordpress.NewClient(config, wordpress.WithLogger(logger)), nil
}

// measureConnectionReuse compares a cold request against a warm one on the
// same pooled client
func measureConnectionReuse(ctx context.Context, client *wordpress.Client) {
	fmt.Println("=== Connection Reuse ===")
	fmt.Println()

	fmt.Println("1. Site Info:")

	start := time.Now()
	info, err := client.GetSiteInfo(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   Site: %s\n", info.Name)
	fmt.Printf("   First call (cold connection): %v\n", firstCall)

	start = time.Now()
	_, _ = client.GetSiteInfo(ctx)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (pooled):         %v\n", secondCall)
	if secondCall > 0 {
		fmt.Printf("   Speedup: %.1fx faster\n", float64(firstCall)/float64(secondCall))
	}
	fmt.Println()
}

// measureSequentialLatency times the common read paths one after another
func measureSequentialLatency(ctx context.Context, client *wordpress.Client) {
	fmt.Println("=== Sequential Latency ===")
	fmt.Println()

	fmt.Println("2. Posts (page 1):")
	start := time.Now()
	posts, err := client.GetPosts(ctx, 1, 2)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d posts in %v\n", len(posts), time.Since(start))
	fmt.Println()

	fmt.Println("3. Categories:")
	start = time.Now()
	categories, err := client.GetCategories(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   %d categories in %v\n", len(categories), time.Since(start))
	fmt.Println()

	if len(posts) == 0 {
		fmt.Println("4. Single post: skipped, no posts available")
		fmt.Println()
		return
	}

	fmt.Println("4. Single post by id:")
	start = time.Now()
	post, err := client.GetPost(ctx, posts[0].ID)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Post %d (%q) in %v\n", post.ID, post.Title, time.Since(start))
	fmt.Println()
}

// measurePaginationCost times increasing per_page sizes on the posts endpoint
func measurePaginationCost(ctx context.Context, client *wordpress.Client) {
	fmt.Println("=== Pagination Cost ===")
	fmt.Println()

	fmt.Println("5. Posts by page size:")
	for _, perPage := range []int{1, 5, 10} {
		start := time.Now()
		posts, err := client.GetPosts(ctx, 1, perPage)
		if err != nil {
			fmt.Printf("   per_page=%d: error: %v\n", perPage, err)
			return
		}
		fmt.Printf("   per_page=%-3d: %d posts in %v\n", perPage, len(posts), time.Since(start))
	}
	fmt.Println()
}

func main() {
	fmt.Println("WordPress MCP Server - Performance Measurements")
	fmt.Println("===============================================")
	fmt.Println()

	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	measureConnectionReuse(ctx, client)
	measureSequentialLatency(ctx, client)
	measurePaginationCost(ctx, client)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("• Connection reuse: HTTP/2 + pooling makes warm requests cheaper")
	fmt.Println("• Every request hits the live site; latency depends on the host")
	fmt.Println("• Larger per_page values trade payload size for round trips")
}
