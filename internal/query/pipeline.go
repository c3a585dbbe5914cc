// AngelaMos | 2026
// pipeline.go

package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ovationworks/stagedoor/internal/core"
)

// FilterAll is the sentinel filter value that turns an enum filter into
// a no-op.
const FilterAll = "all"

// Predicate is a single AND-combined filter over one item.
type Predicate[T any] func(T) bool

type Page struct {
	Number int
	Size   int
}

func (p *Page) Normalize(defaultSize, maxSize int) {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
}

// Request carries one query invocation's parameters. Ephemeral: scoped
// to a single Run call.
type Request[T any] struct {
	Search   string
	Filters  []Predicate[T]
	SortKey  string
	SortDesc bool
	Page     Page
}

// Result pairs one page of items with the filtered, pre-pagination
// count the UI needs to compute page numbers.
type Result[T any] struct {
	Items []T
	Total int
}

// Definition fixes an entity type's searchable attributes and sort
// vocabulary. Free-text search matches case-insensitively as substring
// containment against every search field; sort keys outside the
// definition are programmer errors and fail fast.
type Definition[T any] struct {
	SearchFields []func(T) string
	SortString   map[string]func(T) string
	SortTime     map[string]func(T) time.Time
	SortInt      map[string]func(T) int
	DefaultSort  string
}

// Run applies the filter, sort, paginate pipeline to a snapshot. It is
// pure: the input slice is never mutated and an empty page is a normal
// result, not an error.
func (d Definition[T]) Run(items []T, req Request[T]) (Result[T], error) {
	filtered := d.filter(items, req)

	if err := d.sortItems(filtered, req); err != nil {
		return Result[T]{}, err
	}

	return Result[T]{
		Items: paginate(filtered, req.Page),
		Total: len(filtered),
	}, nil
}

func (d Definition[T]) filter(items []T, req Request[T]) []T {
	search := strings.ToLower(strings.TrimSpace(req.Search))

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if search != "" && !d.matchesSearch(item, search) {
			continue
		}
		if !matchesAll(item, req.Filters) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

func (d Definition[T]) matchesSearch(item T, search string) bool {
	for _, field := range d.SearchFields {
		if strings.Contains(strings.ToLower(field(item)), search) {
			return true
		}
	}
	return false
}

func matchesAll[T any](item T, filters []Predicate[T]) bool {
	for _, match := range filters {
		if !match(item) {
			return false
		}
	}
	return true
}

func (d Definition[T]) sortItems(items []T, req Request[T]) error {
	key := req.SortKey
	if key == "" {
		key = d.DefaultSort
	}
	if key == "" {
		return nil
	}

	less, err := d.lessFunc(key)
	if err != nil {
		return err
	}

	// SliceStable guarantees the tie-breaking determinism callers rely
	// on; plain sort.Slice does not.
	if req.SortDesc {
		sort.SliceStable(items, func(i, j int) bool {
			return less(items[j], items[i])
		})
	} else {
		sort.SliceStable(items, func(i, j int) bool {
			return less(items[i], items[j])
		})
	}

	return nil
}

func (d Definition[T]) lessFunc(key string) (func(a, b T) bool, error) {
	if keyFn, ok := d.SortString[key]; ok {
		return func(a, b T) bool {
			return strings.ToLower(keyFn(a)) < strings.ToLower(keyFn(b))
		}, nil
	}

	if keyFn, ok := d.SortTime[key]; ok {
		return func(a, b T) bool {
			return timeKey(keyFn(a)) < timeKey(keyFn(b))
		}, nil
	}

	if keyFn, ok := d.SortInt[key]; ok {
		return func(a, b T) bool {
			return keyFn(a) < keyFn(b)
		}, nil
	}

	return nil, fmt.Errorf("sort key %q: %w", key, core.ErrInvalidQuery)
}

// timeKey collapses a timestamp to a sortable integer, with the missing
// value treated as epoch zero.
func timeKey(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// paginate clamps slice bounds to the collection length: a page past
// the end yields an empty items slice, never an error.
func paginate[T any](items []T, page Page) []T {
	start := (page.Number - 1) * page.Size
	if start < 0 {
		start = 0
	}
	if start > len(items) {
		start = len(items)
	}

	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
