package listing

import "strings"

// View is the ephemeral query state of one view instance. Its page size is
// fixed at construction; changing the filter criteria resets the page to 1.
type View struct {
	pageSize int
	freeText string
	category string
	page     int
}

// NewView returns a view on page 1. A non-positive page size falls back to 1.
func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &View{pageSize: pageSize, page: 1}
}

// SetFreeText updates the search text
func (v *View) SetFreeText(text string) {
	if strings.TrimSpace(text) != strings.TrimSpace(v.freeText) {
		v.page = 1
	}
	v.freeText = text
}

// SetCategory updates the category filter; "" clears it
func (v *View) SetCategory(category string) {
	if fold(category) != fold(v.category) {
		v.page = 1
	}
	v.category = category
}

// Query returns the query for the current state
func (v *View) Query() Query {
	return Query{
		FreeText: v.freeText,
		Category: v.category,
		Page:     v.page,
		PageSize: v.pageSize,
	}
}

// Page returns the current page
func (v *View) Page() int {
	return v.page
}

// PageSize returns the fixed page size
func (v *View) PageSize() int {
	return v.pageSize
}

// SetPage requests a page before the total is known. Apply clamps it.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// GoTo moves to page, clamped to [1, totalPages]
func (v *View) GoTo(page, totalPages int) {
	v.page = ClampPage(page, totalPages)
}

// Next moves forward one page if there is one
func (v *View) Next(totalPages int) {
	v.GoTo(v.page+1, totalPages)
}

// Prev moves back one page if there is one
func (v *View) Prev(totalPages int) {
	v.GoTo(v.page-1, totalPages)
}

// Apply derives the current page of items, first clamping the page against
// the filtered total so a shrinking source list never strands the view past
// its last page.
func Apply[T any](v *View, items []T, keys Keys[T]) Result[T] {
	q := v.Query()
	filtered := Filter(items, q, keys)
	v.page = ClampPage(v.page, TotalPages(len(filtered), v.pageSize))
	q.Page = v.page
	return Derive(filtered, Query{Page: q.Page, PageSize: q.PageSize}, keys)
}
