package agenda

import "testing"

func TestPaginateEmptyInput(t *testing.T) {
	res := Paginate([]RawActivity{}, 1, 10)
	if res.TotalPages != 1 {
		t.Fatalf("empty input must report 1 page, got %d", res.TotalPages)
	}
	if len(res.Items) != 0 {
		t.Fatalf("empty input must yield no items, got %d", len(res.Items))
	}
}

func TestPaginateSlicing(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	res := Paginate(items, 1, 10)
	if res.TotalPages != 3 || len(res.Items) != 10 || res.Items[0] != 0 {
		t.Fatalf("page 1: got %d pages, %d items", res.TotalPages, len(res.Items))
	}

	res = Paginate(items, 3, 10)
	if len(res.Items) != 5 || res.Items[0] != 20 {
		t.Fatalf("page 3: expected the 5-item tail, got %v", res.Items)
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	items := make([]int, 20)
	res := Paginate(items, 1, 10)
	if res.TotalPages != 2 {
		t.Fatalf("20/10 is 2 pages, got %d", res.TotalPages)
	}
}

func TestPaginateOutOfRangePage(t *testing.T) {
	items := []int{1, 2, 3}

	res := Paginate(items, 5, 10)
	if len(res.Items) != 0 || res.TotalPages != 1 {
		t.Fatalf("past-the-end page must be empty, got %v", res.Items)
	}

	res = Paginate(items, 0, 10)
	if len(res.Items) != 0 {
		t.Fatalf("page 0 is out of range, got %v", res.Items)
	}
}
