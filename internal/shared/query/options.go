package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination is a 1-indexed page request.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination never fails. When either page or page_size is not an
// integer both fall back to their defaults together.
func ParsePagination(values url.Values) Pagination {
	p := Pagination{Page: DefaultPage, PageSize: DefaultPageSize}

	rawPage := strings.TrimSpace(values.Get("page"))
	rawSize := strings.TrimSpace(values.Get("page_size"))

	page, size := DefaultPage, DefaultPageSize
	var err error
	if rawPage != "" {
		if page, err = strconv.Atoi(rawPage); err != nil {
			return p
		}
	}
	if rawSize != "" {
		if size, err = strconv.Atoi(rawSize); err != nil {
			return p
		}
	}

	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Pagination{Page: page, PageSize: size}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Ordering is a whitelisted ORDER BY column.
type Ordering struct {
	Column string
	Desc   bool
}

// ParseOrdering maps a public field name (optionally prefixed with "-")
// onto a column from allowed. Unknown fields yield def.
func ParseOrdering(raw string, allowed map[string]string, def Ordering) Ordering {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	desc := strings.HasPrefix(raw, "-")
	field := strings.TrimPrefix(raw, "-")

	column, ok := allowed[field]
	if !ok {
		return def
	}
	return Ordering{Column: column, Desc: desc}
}

// OptionalString returns nil for an absent or empty parameter.
func OptionalString(values url.Values, key string) *string {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// OptionalDecimal returns nil when the bound is absent or unparseable.
func OptionalDecimal(values url.Values, key string) *decimal.Decimal {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

func OptionalBool(values url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(values.Get(key))) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
