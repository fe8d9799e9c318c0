package wordpress

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration. Errors pass through untouched so handlers can classify
// them by kind.

// FetchSiteInfoMCP is the MCP wrapper for GetSiteInfo
func (c *Client) FetchSiteInfoMCP(ctx context.Context, args SiteInfoArgs) (SiteInfo, error) {
	return c.GetSiteInfo(ctx)
}

// FetchPostsMCP is the MCP wrapper for GetPosts
func (c *Client) FetchPostsMCP(ctx context.Context, args ListPostsArgs) (PostListResult, error) {
	posts, err := c.GetPosts(ctx, normalizePage(args.Page), normalizePerPage(args.PerPage))
	if err != nil {
		return PostListResult{}, err
	}
	return PostListResult{Posts: posts, TotalResults: len(posts)}, nil
}

// FetchPostsByCategoryMCP is the MCP wrapper for GetPostsByCategory
func (c *Client) FetchPostsByCategoryMCP(ctx context.Context, args PostsByCategoryArgs) (PostListResult, error) {
	if err := ValidateCategories(args.Categories); err != nil {
		return PostListResult{}, err
	}

	posts, err := c.GetPostsByCategory(ctx, args.Categories, normalizePage(args.Page))
	if err != nil {
		return PostListResult{}, err
	}
	return PostListResult{Posts: posts, TotalResults: len(posts)}, nil
}

// FetchCategoriesMCP is the MCP wrapper for GetCategories
func (c *Client) FetchCategoriesMCP(ctx context.Context, args ListCategoriesArgs) (CategoryListResult, error) {
	categories, err := c.GetCategories(ctx)
	if err != nil {
		return CategoryListResult{}, err
	}
	return CategoryListResult{Categories: categories, TotalResults: len(categories)}, nil
}

// FetchPostByIDMCP is the MCP wrapper for GetPost
func (c *Client) FetchPostByIDMCP(ctx context.Context, args GetPostArgs) (PostSummary, error) {
	return c.GetPost(ctx, args.PostID)
}

// FetchPagesMCP is the MCP wrapper for GetPages
func (c *Client) FetchPagesMCP(ctx context.Context, args ListPagesArgs) (PostListResult, error) {
	posts, err := c.GetPages(ctx, normalizePage(args.Page), normalizePerPage(args.PerPage))
	if err != nil {
		return PostListResult{}, err
	}
	return PostListResult{Posts: posts, TotalResults: len(posts)}, nil
}

// FetchPageByIDMCP is the MCP wrapper for GetPage
func (c *Client) FetchPageByIDMCP(ctx context.Context, args GetPageArgs) (PostSummary, error) {
	return c.GetPage(ctx, args.PageID)
}
