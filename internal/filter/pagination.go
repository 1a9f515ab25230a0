package filter

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize is used when the request does not name one.
	DefaultPageSize = 15

	// MaxPageSize is the hard cap; larger requests are clamped, not rejected.
	MaxPageSize = 100
)

// Page is a validated pagination window.
type Page struct {
	Number int
	Size   int
}

// Offset is the number of rows to skip before the window starts.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit is the maximum number of rows in the window.
func (p Page) Limit() int {
	return p.Size
}

// TotalPages computes ceil(total / page size) for the filtered row count.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}

// ParsePage validates page and page_size from the request. Both must be
// positive integers when present; page_size above the cap is clamped.
func ParsePage(params url.Values) (Page, error) {
	page := Page{Number: 1, Size: DefaultPageSize}

	if raw := params.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Page{}, &InvalidPaginationError{Parameter: "page", Value: raw}
		}
		page.Number = n
	}

	if raw := params.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Page{}, &InvalidPaginationError{Parameter: "page_size", Value: raw}
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		page.Size = n
	}

	return page, nil
}
