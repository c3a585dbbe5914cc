// AngelaMos | 2026
// pipeline_test.go

package query

import (
	"errors"
	"testing"
	"time"

	"github.com/ovationworks/stagedoor/internal/core"
)

type item struct {
	Name      string
	Email     string
	Active    bool
	Rank      int
	CreatedAt time.Time
}

var itemDefinition = Definition[item]{
	SearchFields: []func(item) string{
		func(i item) string { return i.Name },
		func(i item) string { return i.Email },
	},
	SortString: map[string]func(item) string{
		"name": func(i item) string { return i.Name },
	},
	SortTime: map[string]func(item) time.Time{
		"created_at": func(i item) time.Time { return i.CreatedAt },
	},
	SortInt: map[string]func(item) int{
		"rank": func(i item) int { return i.Rank },
	},
	DefaultSort: "name",
}

func day(n int) time.Time {
	return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC)
}

func fixtures() []item {
	return []item{
		{Name: "Viola", Email: "viola@globe.example", Active: true, Rank: 3, CreatedAt: day(4)},
		{Name: "orsino", Email: "duke@illyria.example", Active: false, Rank: 1, CreatedAt: day(2)},
		{Name: "Malvolio", Email: "steward@illyria.example", Active: true, Rank: 2, CreatedAt: day(1)},
		{Name: "Feste", Email: "fool@globe.example", Active: true, Rank: 3, CreatedAt: day(3)},
	}
}

func run(t *testing.T, req Request[item]) Result[item] {
	t.Helper()
	req.Page.Normalize(20, 100)
	result, err := itemDefinition.Run(fixtures(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return result
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	result := run(t, Request[item]{Search: "ILLYRIA"})

	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
	for _, it := range result.Items {
		if it.Email != "duke@illyria.example" && it.Email != "steward@illyria.example" {
			t.Errorf("unexpected match %q", it.Email)
		}
	}

	// Any single search field matching suffices.
	result = run(t, Request[item]{Search: "viola"})
	if result.Total != 1 || result.Items[0].Name != "Viola" {
		t.Fatalf("search by name: %+v", result)
	}
}

func TestFiltersIntersect(t *testing.T) {
	active := func(i item) bool { return i.Active }
	rank3 := func(i item) bool { return i.Rank == 3 }

	all := run(t, Request[item]{})
	onlyActive := run(t, Request[item]{Filters: []Predicate[item]{active}})
	both := run(t, Request[item]{Filters: []Predicate[item]{active, rank3}})

	if all.Total != 4 || onlyActive.Total != 3 || both.Total != 2 {
		t.Fatalf("totals = %d/%d/%d, want 4/3/2",
			all.Total, onlyActive.Total, both.Total)
	}

	// Adding a filter can only shrink the result set.
	if both.Total > onlyActive.Total || onlyActive.Total > all.Total {
		t.Fatal("filters must intersect, never widen")
	}
}

func TestSearchCombinesWithFilters(t *testing.T) {
	active := func(i item) bool { return i.Active }

	result := run(t, Request[item]{
		Search:  "globe",
		Filters: []Predicate[item]{active},
	})

	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
}

func TestSortStringIgnoresCase(t *testing.T) {
	result := run(t, Request[item]{SortKey: "name"})

	want := []string{"Feste", "Malvolio", "orsino", "Viola"}
	for i, name := range want {
		if result.Items[i].Name != name {
			t.Fatalf("order[%d] = %q, want %q", i, result.Items[i].Name, name)
		}
	}
}

func TestSortDescReversesOrder(t *testing.T) {
	asc := run(t, Request[item]{SortKey: "created_at"})
	desc := run(t, Request[item]{SortKey: "created_at", SortDesc: true})

	n := len(asc.Items)
	for i := 0; i < n; i++ {
		if asc.Items[i].Name != desc.Items[n-1-i].Name {
			t.Fatalf("desc is not the reverse of asc at %d", i)
		}
	}
}

func TestSortStableOnTies(t *testing.T) {
	// Viola and Feste share rank 3; input order must hold between them,
	// and repeated runs must agree.
	first := run(t, Request[item]{SortKey: "rank"})
	second := run(t, Request[item]{SortKey: "rank"})

	for i := range first.Items {
		if first.Items[i].Name != second.Items[i].Name {
			t.Fatal("sort order not deterministic across runs")
		}
	}

	var violaIdx, festeIdx int
	for i, it := range first.Items {
		switch it.Name {
		case "Viola":
			violaIdx = i
		case "Feste":
			festeIdx = i
		}
	}
	if violaIdx > festeIdx {
		t.Fatal("tie broke input order: Viola listed before Feste originally")
	}
}

func TestSortZeroTimeSortsFirst(t *testing.T) {
	items := []item{
		{Name: "dated", CreatedAt: day(5)},
		{Name: "undated"},
	}

	result, err := itemDefinition.Run(items, Request[item]{
		SortKey: "created_at",
		Page:    Page{Number: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Items[0].Name != "undated" {
		t.Fatalf("zero time should sort as epoch, got %q first",
			result.Items[0].Name)
	}
}

func TestUnknownSortKeyFails(t *testing.T) {
	_, err := itemDefinition.Run(fixtures(), Request[item]{
		SortKey: "salary",
		Page:    Page{Number: 1, Size: 10},
	})
	if !errors.Is(err, core.ErrInvalidQuery) {
		t.Fatalf("error = %v, want ErrInvalidQuery", err)
	}
}

func TestPaginationWindow(t *testing.T) {
	result := run(t, Request[item]{
		SortKey: "name",
		Page:    Page{Number: 2, Size: 3},
	})

	if result.Total != 4 {
		t.Fatalf("total = %d, want full filtered count", result.Total)
	}
	if len(result.Items) != 1 {
		t.Fatalf("page 2 of size 3 over 4 items: got %d items", len(result.Items))
	}
	if result.Items[0].Name != "Viola" {
		t.Fatalf("page 2 item = %q", result.Items[0].Name)
	}
}

func TestPageBeyondEndIsEmpty(t *testing.T) {
	result := run(t, Request[item]{Page: Page{Number: 50, Size: 10}})

	if len(result.Items) != 0 {
		t.Fatalf("got %d items, want none", len(result.Items))
	}
	if result.Total != 4 {
		t.Fatalf("total = %d, want unchanged", result.Total)
	}
}

func TestPageNormalizeClamps(t *testing.T) {
	p := Page{Number: 0, Size: 0}
	p.Normalize(20, 100)
	if p.Number != 1 || p.Size != 20 {
		t.Fatalf("normalized = %+v, want {1 20}", p)
	}

	p = Page{Number: -3, Size: 500}
	p.Normalize(20, 100)
	if p.Number != 1 || p.Size != 100 {
		t.Fatalf("normalized = %+v, want {1 100}", p)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	items := fixtures()
	original := make([]item, len(items))
	copy(original, items)

	if _, err := itemDefinition.Run(items, Request[item]{
		SortKey: "rank",
		Page:    Page{Number: 1, Size: 10},
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := range items {
		if items[i].Name != original[i].Name {
			t.Fatal("input slice was reordered")
		}
	}
}

func TestEmptySnapshot(t *testing.T) {
	result, err := itemDefinition.Run(nil, Request[item]{
		Page: Page{Number: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Total != 0 || len(result.Items) != 0 {
		t.Fatalf("result = %+v, want empty", result)
	}
}
