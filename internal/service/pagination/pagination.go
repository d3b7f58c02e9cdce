// Package pagination holds the shared page envelope returned by list
// operations across services.
package pagination

// Result wraps one page of data with its paging metadata.
type Result[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Clamp normalizes page and per-page values and returns the row offset.
// Page defaults to 1, per-page defaults to 20 and is capped at 100.
func Clamp(page, perPage int) (p, pp, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage, (page - 1) * perPage
}

// New builds a Result computing the total page count.
func New[T any](data []T, total, page, perPage int) *Result[T] {
	return &Result[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
