package agenda

// DefaultPageSize matches the row count of the stock table views.
const DefaultPageSize = 10

// PageResult is one page of a sliced collection plus the page count the
// navigation controls render.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into pages of size and returns the requested
// page. TotalPages is at least 1 even for empty input so a "page 1 of 1"
// label is always well-formed. The page argument is not clamped here;
// an out-of-range page yields an empty item list and callers re-clamp on
// navigation (see View).
func Paginate[T any](items []T, page, size int) PageResult[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := (len(items) + size - 1) / size
	if total < 1 {
		total = 1
	}

	start := (page - 1) * size
	if start < 0 || start >= len(items) {
		return PageResult[T]{Items: []T{}, TotalPages: total}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return PageResult[T]{Items: items[start:end], TotalPages: total}
}
