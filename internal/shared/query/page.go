package query

import "gorm.io/gorm"

// Page is the shared list response shape.
type Page[T any] struct {
	Results     []T   `json:"results"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	TotalCount  int64 `json:"total_count"`
}

// TotalPages follows the convention that an empty set still has one page.
func TotalPages(count int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate counts the filtered set then loads the requested page.
// Scopes that only shape the select list or ordering go in scopes so the
// count query stays plain.
func Paginate[T any](filtered *gorm.DB, p Pagination, scopes ...Scope) (Page[T], error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	pages := TotalPages(total, p.PageSize)
	if p.Page > pages {
		p.Page = pages
	}

	rows := make([]T, 0, p.PageSize)
	if total > 0 {
		err := filtered.Session(&gorm.Session{}).
			Scopes(scopes...).
			Offset(p.Offset()).
			Limit(p.PageSize).
			Find(&rows).Error
		if err != nil {
			return Page[T]{}, err
		}
	}

	return Page[T]{
		Results:     rows,
		TotalPages:  pages,
		CurrentPage: p.Page,
		TotalCount:  total,
	}, nil
}

// MapPage converts the result type while keeping the counters.
func MapPage[T, R any](in Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(in.Results))
	for i, v := range in.Results {
		out[i] = fn(v)
	}
	return Page[R]{
		Results:     out,
		TotalPages:  in.TotalPages,
		CurrentPage: in.CurrentPage,
		TotalCount:  in.TotalCount,
	}
}
