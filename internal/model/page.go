package model

// FeedPageSize is the fixed number of posts (and comments) per page.
const FeedPageSize = 10

// Paginate resolves a requested 1-indexed page against a total item count.
// The page number is clamped into [1, totalPages] rather than rejected, so a
// request past the end returns the last valid page. An empty collection still
// has one (empty) page.
func Paginate(totalCount, requestedPage, pageSize int) (page, totalPages, offset int) {
	if pageSize <= 0 {
		pageSize = FeedPageSize
	}

	totalPages = (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page = requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset = (page - 1) * pageSize
	return page, totalPages, offset
}
