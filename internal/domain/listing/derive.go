// Package listing filters and paginates catalog lists for the storefront
// views. Every view shares the same rules and differs only in page size.
package listing

import (
	"strings"
)

// Query is the per-view input to Derive. An empty Category means no
// category filter.
type Query struct {
	FreeText string `json:"q"`
	Category string `json:"category,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// Keys extracts the fields Derive filters on.
type Keys[T any] struct {
	// Name is matched against the free text.
	Name func(T) string
	// Category resolves an item's category name. A nil func, or false, means
	// the item has no resolvable category.
	Category func(T) (string, bool)
}

// Result is one page of a derived list.
type Result[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// Derive filters items by category and free text, then slices out q.Page.
// It preserves the relative order of items and never modifies the input.
// Callers clamp q.Page to [1, TotalPages] first; a page outside that range
// yields an empty page rather than being reinterpreted.
func Derive[T any](items []T, q Query, keys Keys[T]) Result[T] {
	filtered := Filter(items, q, keys)

	totalPages := TotalPages(len(filtered), q.PageSize)
	res := Result[T]{
		Items:      []T{},
		Page:       q.Page,
		TotalPages: totalPages,
		Total:      len(filtered),
	}

	if q.PageSize <= 0 || q.Page < 1 {
		return res
	}

	start := (q.Page - 1) * q.PageSize
	if start >= len(filtered) {
		return res
	}
	end := start + q.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	res.Items = append(res.Items, filtered[start:end]...)
	return res
}

// Filter applies the category filter and then the free-text filter.
// The returned slice is always newly allocated.
func Filter[T any](items []T, q Query, keys Keys[T]) []T {
	out := make([]T, 0, len(items))

	category := fold(q.Category)
	text := fold(q.FreeText)

	for _, item := range items {
		if q.Category != "" {
			if keys.Category == nil {
				continue
			}
			name, ok := keys.Category(item)
			if !ok || name == "" || fold(name) != category {
				continue
			}
		}

		if text != "" {
			if keys.Name == nil || !strings.Contains(strings.ToLower(keys.Name(item)), text) {
				continue
			}
		}

		out = append(out, item)
	}

	return out
}

// TotalPages returns ceil(n/pageSize), never less than 1
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage keeps page within [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
