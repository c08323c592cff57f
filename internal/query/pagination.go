package query

import "math"

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes pagination metadata, clamping invalid input.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Paginate returns one page of records. Pages past the end are empty.
func Paginate[T any](records []T, page, perPage int) ([]T, Pagination) {
	p := NewPagination(page, perPage, len(records))
	if p.Page > p.TotalPages {
		return []T{}, p
	}
	start := (p.Page - 1) * p.PerPage
	end := start + p.PerPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], p
}
