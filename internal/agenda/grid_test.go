package agenda

import (
	"testing"
	"time"
)

func TestBuildGridAlwaysHas42Cells(t *testing.T) {
	cases := []struct {
		year        int
		month       time.Month
		daysInMonth int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.March, 31},
		{2024, time.April, 30},
		{2024, time.September, 30}, // starts on Sunday, max leading cells
		{2024, time.July, 31},      // starts on Monday, no leading cells
		{2024, time.December, 31},
		{2025, time.January, 31},
	}

	for _, c := range cases {
		grid := BuildGrid(c.year, c.month)
		if len(grid) != 42 {
			t.Fatalf("%d-%d: expected 42 cells, got %d", c.year, c.month, len(grid))
		}
		current := 0
		for _, cell := range grid {
			if cell.IsCurrentMonth {
				current++
			}
			if cell.Date.IsZero() {
				t.Fatalf("%d-%d: cell without a date", c.year, c.month)
			}
			if cell.Day != cell.Date.Day() {
				t.Fatalf("%d-%d: day %d does not match date %v", c.year, c.month, cell.Day, cell.Date)
			}
		}
		if current != c.daysInMonth {
			t.Fatalf("%d-%d: expected %d in-month cells, got %d", c.year, c.month, c.daysInMonth, current)
		}
	}
}

func TestBuildGridStartsMondayFirst(t *testing.T) {
	// July 2024 starts on a Monday: the first cell is July 1st.
	grid := BuildGrid(2024, time.July)
	if !grid[0].IsCurrentMonth || grid[0].Day != 1 {
		t.Fatalf("expected July 1 first, got day=%d current=%v", grid[0].Day, grid[0].IsCurrentMonth)
	}

	// September 2024 starts on a Sunday: six leading cells from August.
	grid = BuildGrid(2024, time.September)
	for i := 0; i < 6; i++ {
		if grid[i].IsCurrentMonth {
			t.Fatalf("cell %d should belong to August", i)
		}
	}
	if grid[5].Day != 31 || grid[6].Day != 1 {
		t.Fatalf("expected Aug 31 then Sep 1, got %d then %d", grid[5].Day, grid[6].Day)
	}
}

func TestBuildGridDatesAreContiguous(t *testing.T) {
	grid := BuildGrid(2024, time.February)
	for i := 1; i < len(grid); i++ {
		want := grid[i-1].Date.AddDate(0, 0, 1)
		if !grid[i].Date.Equal(want) {
			t.Fatalf("cell %d: expected %v, got %v", i, want, grid[i].Date)
		}
	}
}
