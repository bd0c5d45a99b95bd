// Package pagelist is the shared read-model transform for admin-facing
// boards: filter by a case-insensitive search term, sort by a monotonic
// identifier, slice one page. Project is pure and deterministic; it does
// NOT clamp the page — callers clamp with Clamp after every source or
// filter mutation, otherwise an out-of-range page silently yields an empty
// one.
package pagelist

import (
	"sort"
	"strings"
)

// Direction orders rows by their identifier.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}

	return Ascending
}

// Params drive one projection.
type Params struct {
	Search    string
	Direction Direction
	Page      int // 1-based
	PageSize  int
}

// Page is one projected page plus the figures the pager needs.
type Page[T any] struct {
	Items         []T
	TotalPages    int
	FilteredCount int
}

// Project filters source rows whose match function accepts the search term
// (an empty term passes every row), sorts them by key in the requested
// direction with source order preserved for equal keys, and returns the
// requested page. TotalPages is ceil(filtered/pageSize); zero filtered rows
// mean zero pages and an empty page.
func Project[T any](source []T, p Params, match func(T, string) bool, key func(T) int64) Page[T] {
	term := strings.ToLower(strings.TrimSpace(p.Search))

	filtered := make([]T, 0, len(source))
	for _, row := range source {
		if term == "" || match(row, term) {
			filtered = append(filtered, row)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if p.Direction == Descending {
			return key(filtered[i]) > key(filtered[j])
		}

		return key(filtered[i]) < key(filtered[j])
	})

	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (len(filtered) + p.PageSize - 1) / p.PageSize
	}

	start := (p.Page - 1) * p.PageSize
	if start < 0 || start >= len(filtered) {
		return Page[T]{Items: []T{}, TotalPages: totalPages, FilteredCount: len(filtered)}
	}

	end := min(start+p.PageSize, len(filtered))

	return Page[T]{Items: filtered[start:end], TotalPages: totalPages, FilteredCount: len(filtered)}
}

// MatchAny reports whether the lowercased search term is a substring of any
// of the given fields. Term must already be lowercased by Project.
func MatchAny(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}

// Clamp forces a page number into [1, totalPages]. With no pages at all the
// result is 1, so the view-model never goes below the first page.
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}

	return page
}
