// Package wordpress provides a read-only client for the WordPress REST API.
// It fetches site info, posts, pages, and categories from a site's /wp-json
// endpoints and projects each response down to a compact field set.
package wordpress

// SiteInfo holds basic information about a WordPress site from /wp-json
type SiteInfo struct {
	Name        string `json:"name"`        // Site title
	Description string `json:"description"` // Site tagline
	URL         string `json:"url"`         // Site home URL
}

// PostSummary is the reduced representation of a WordPress post or page.
// Pages share the same shape as posts in the REST API, so both map here.
type PostSummary struct {
	ID            int    `json:"id"`             // Post/page ID
	Date          string `json:"date"`           // Publication date (ISO-8601)
	Link          string `json:"link"`           // Canonical URL
	Title         string `json:"title"`          // Rendered title (title.rendered)
	Content       string `json:"content"`        // Rendered HTML body (content.rendered), returned as-is
	FeaturedMedia int    `json:"featured_media"` // Featured media ID, 0 if none
}

// CategorySummary is the reduced representation of a WordPress category
type CategorySummary struct {
	ID    int    `json:"id"`    // Term ID
	Name  string `json:"name"`  // Category name
	Count int    `json:"count"` // Number of posts in the category
	Link  string `json:"link"`  // Category archive URL
}
