package wordpress

// SiteInfoArgs contains parameters for the site info tool (none)
type SiteInfoArgs struct{}

// ListPostsArgs contains parameters for listing posts
type ListPostsArgs struct {
	Page    int `json:"page,omitempty" jsonschema_description:"Result page number (default: 1)"`
	PerPage int `json:"per_page,omitempty" jsonschema_description:"Number of posts per page (default: 2)"`
}

// PostsByCategoryArgs contains parameters for listing posts in a category
type PostsByCategoryArgs struct {
	Categories string `json:"categories" jsonschema:"required" jsonschema_description:"Category ID to filter by (comma-separated for multiple)"`
	Page       int    `json:"page,omitempty" jsonschema_description:"Result page number (default: 1)"`
}

// ListCategoriesArgs contains parameters for the category list tool (none)
type ListCategoriesArgs struct{}

// GetPostArgs contains parameters for fetching a single post
type GetPostArgs struct {
	PostID int `json:"post_id" jsonschema:"required" jsonschema_description:"ID of the post to fetch"`
}

// ListPagesArgs contains parameters for listing pages
type ListPagesArgs struct {
	Page    int `json:"page,omitempty" jsonschema_description:"Result page number (default: 1)"`
	PerPage int `json:"per_page,omitempty" jsonschema_description:"Number of pages per page (default: 2)"`
}

// GetPageArgs contains parameters for fetching a single page
type GetPageArgs struct {
	PageID int `json:"page_id" jsonschema:"required" jsonschema_description:"ID of the page to fetch"`
}

// PostListResult is the result of a post or page list tool
type PostListResult struct {
	Posts        []PostSummary `json:"posts"`
	TotalResults int           `json:"total_results"`
}

// CategoryListResult is the result of the category list tool
type CategoryListResult struct {
	Categories   []CategorySummary `json:"categories"`
	TotalResults int               `json:"total_results"`
}
