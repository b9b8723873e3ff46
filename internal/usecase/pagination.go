// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// PageQuery carries the raw pagination parameters as received from the
// query string. Parsing and validation happen in the use case, never
// silently in the handler.
type PageQuery struct {
	Page  string
	Limit string
}

// PageMeta describes the position of a result page within the full
// filtered set.
type PageMeta struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPageMeta computes the page count for the given total.
func NewPageMeta(page, limit, total int64) PageMeta {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
