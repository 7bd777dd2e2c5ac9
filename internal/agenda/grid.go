package agenda

import "time"

// gridCells keeps the month view at six full weeks so the layout never
// jumps between five and six rows.
const gridCells = 42

// BuildGrid returns the 42-cell month view for year/month: the trailing
// days of the previous month needed to start the first row on Monday,
// one cell per day of the target month, then days of the next month until
// the grid is full.
func BuildGrid(year int, month time.Month) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	// Rebase weekday so Monday = 0.
	lead := (int(first.Weekday()) + 6) % 7

	cells := make([]CalendarDay, 0, gridCells)
	for i := lead; i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		cells = append(cells, CalendarDay{Day: d.Day(), Date: d})
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, CalendarDay{
			Day:            day,
			IsCurrentMonth: true,
			Date:           time.Date(year, month, day, 0, 0, 0, 0, time.Local),
		})
	}

	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells) < gridCells; i++ {
		d := next.AddDate(0, 0, i)
		cells = append(cells, CalendarDay{Day: d.Day(), Date: d})
	}

	return cells
}
