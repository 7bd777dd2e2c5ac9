package agenda

import (
	"fmt"
	"testing"
	"time"
)

func manyActivities(n int) []RawActivity {
	out := make([]RawActivity, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, RawActivity{ID: uint64(i + 1), Subject: fmt.Sprintf("actividad %d", i+1), Type: TypeNote})
	}
	return out
}

func TestViewResetsPageOnFilterChange(t *testing.T) {
	v := NewView(10)
	v.Page = 3

	v.SetSearch("actividad")
	if v.Page != 1 {
		t.Fatalf("search change must reset to page 1, got %d", v.Page)
	}

	v.Page = 2
	v.SetTimeRange(RangeHoy)
	if v.Page != 1 {
		t.Fatalf("range change must reset to page 1, got %d", v.Page)
	}

	v.Page = 2
	v.SetLabels([]string{"Nota"})
	if v.Page != 1 {
		t.Fatalf("label change must reset to page 1, got %d", v.Page)
	}

	v.Page = 2
	v.SetTab(TypeNote)
	if v.Page != 1 {
		t.Fatalf("tab change must reset to page 1, got %d", v.Page)
	}
}

func TestViewNavigationClamps(t *testing.T) {
	v := NewView(10)
	res := v.Apply(manyActivities(25), time.Now())
	if res.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", res.TotalPages)
	}

	v.Prev()
	if v.Page != 1 {
		t.Fatalf("prev on page 1 is a no-op, got %d", v.Page)
	}

	v.Next(res.TotalPages)
	v.Next(res.TotalPages)
	v.Next(res.TotalPages) // already last
	if v.Page != 3 {
		t.Fatalf("next must stop at the last page, got %d", v.Page)
	}
}

func TestViewIsolation(t *testing.T) {
	// Two views over the same collection keep independent state.
	a, b := NewView(10), NewView(10)
	items := manyActivities(25)

	a.SetSearch("actividad 25")
	if b.Filter.SearchText != "" {
		t.Fatalf("views must not share filter state")
	}

	resA := a.Apply(items, time.Now())
	resB := b.Apply(items, time.Now())
	if len(resA.Items) == len(resB.Items) {
		t.Fatalf("filtered and unfiltered views should differ: %d vs %d", len(resA.Items), len(resB.Items))
	}
}

func TestViewRecomputesOnNewData(t *testing.T) {
	// Sources resolve out of order; the view just reflects whatever the
	// current inputs are.
	v := NewView(10)

	res := v.Apply(nil, time.Now())
	if res.TotalPages != 1 || len(res.Items) != 0 {
		t.Fatalf("no data yet: expected empty page 1 of 1, got %+v", res)
	}

	res = v.Apply(manyActivities(5), time.Now())
	if len(res.Items) != 5 {
		t.Fatalf("late-arriving data must show up, got %d items", len(res.Items))
	}
}
