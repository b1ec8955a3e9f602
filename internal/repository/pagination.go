package repository

// Defaults applied when a caller omits the paging parameters.
const (
	DefaultPage = 0
	DefaultSize = 10
	maxPageSize = 100
)

// Page is one page of results plus the totals a client needs to walk
// the collection.
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
}

// NewPage assembles a page envelope from a slice and the total count
func NewPage[T any](content []T, page, size, total int) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// normalizePaging clamps paging parameters into a sane range
func normalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
