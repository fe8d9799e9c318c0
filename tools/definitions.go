package tools

// AllTools contains all tool specifications for the WordPress MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SITE TOOLS
	// ==========================================================================
	{
		Name:     "fetch_wordpress_info",
		Method:   "FetchSiteInfo",
		Title:    "Get Site Info",
		Category: "site",
		Description: `Get basic information about the WordPress site.

USE WHEN: User asks "what site is this", "what's the site called", "describe the site".

NOT FOR: Fetching posts, pages, or categories (use the dedicated tools).

PARAMETERS: none.

RETURNS: Site name, description (tagline), and URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// POST TOOLS
	// ==========================================================================
	{
		Name:     "fetch_posts",
		Method:   "FetchPosts",
		Title:    "Fetch Posts",
		Category: "posts",
		Description: `Fetch recent posts from the WordPress site.

USE WHEN: User asks "show recent posts", "what's on the blog", "latest articles".

NOT FOR: Posts in a specific category (use fetch_posts_by_category). Not for a single known post (use fetch_post_by_id). Not for static pages (use fetch_pages).

PARAMETERS:
- page: Result page number (default 1)
- per_page: Posts per page (default 2)

RETURNS: Post summaries with id, date, link, title, HTML content, and featured media id.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "fetch_posts_by_category",
		Method:   "FetchPostsByCategory",
		Title:    "Fetch Posts by Category",
		Category: "posts",
		Description: `Fetch posts belonging to a specific category.

USE WHEN: User asks "show posts in category X", "news articles only", "posts tagged with category 5".

NOT FOR: All recent posts regardless of category (use fetch_posts). Not for listing the categories themselves (use fetch_categories).

PARAMETERS:
- categories: Category ID, comma-separated for multiple (required)
- page: Result page number (default 1)

RETURNS: Post summaries with id, date, link, title, HTML content, and featured media id.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "fetch_post_by_id",
		Method:   "FetchPostByID",
		Title:    "Fetch Post by ID",
		Category: "posts",
		Description: `Fetch a single post by its numeric ID.

USE WHEN: User references a specific post id, "get post 42", or a post id came from an earlier list call.

NOT FOR: Browsing posts (use fetch_posts). Not for pages (use fetch_page_by_id).

PARAMETERS:
- post_id: Post ID (required)

RETURNS: One post summary. An unknown id fails with the remote 404.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGE TOOLS
	// ==========================================================================
	{
		Name:     "fetch_pages",
		Method:   "FetchPages",
		Title:    "Fetch Pages",
		Category: "pages",
		Description: `Fetch static pages from the WordPress site (About, Contact, etc.).

USE WHEN: User asks "list the site's pages", "show the about page", "what static pages exist".

NOT FOR: Blog posts (use fetch_posts).

PARAMETERS:
- page: Result page number (default 1)
- per_page: Pages per page (default 2)

RETURNS: Page summaries in the same shape as posts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "fetch_page_by_id",
		Method:   "FetchPageByID",
		Title:    "Fetch Page by ID",
		Category: "pages",
		Description: `Fetch a single static page by its numeric ID.

USE WHEN: User references a specific page id, "get page 7".

NOT FOR: Blog posts (use fetch_post_by_id). Not for browsing pages (use fetch_pages).

PARAMETERS:
- page_id: Page ID (required)

RETURNS: One page summary. An unknown id fails with the remote 404.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CATEGORY TOOLS
	// ==========================================================================
	{
		Name:     "fetch_categories",
		Method:   "FetchCategories",
		Title:    "Fetch Categories",
		Category: "categories",
		Description: `List the site's post categories.

USE WHEN: User asks "what categories exist", "how is the blog organized", or a category id is needed for fetch_posts_by_category.

NOT FOR: Fetching the posts inside a category (use fetch_posts_by_category).

PARAMETERS: none.

RETURNS: Categories with id, name, post count, and archive link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolNames returns the names of all registered tools, in definition order.
func ToolNames() []string {
	names := make([]string, 0, len(AllTools))
	for _, spec := range AllTools {
		names = append(names, spec.Name)
	}
	return names
}
