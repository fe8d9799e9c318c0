package wordpress

import "fmt"

const (
	// DefaultPage is the page number used when none is given
	DefaultPage = 1

	// DefaultPerPage is the page size used when none is given.
	// No upper bound is enforced locally; the remote API applies its own.
	DefaultPerPage = 2
)

// normalizePage returns the page number, substituting the default for
// zero or negative values
func normalizePage(page int) int {
	if page <= 0 {
		return DefaultPage
	}
	return page
}

// normalizePerPage returns the page size, substituting the default for
// zero or negative values
func normalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	return perPage
}

// ValidateCategories checks that a categories filter was provided.
// The value itself is passed to the API verbatim.
func ValidateCategories(categories string) error {
	if categories == "" {
		return fmt.Errorf("categories is required")
	}
	return nil
}
