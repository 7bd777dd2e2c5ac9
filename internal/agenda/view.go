package agenda

import "time"

// View is the filter-plus-pagination state of one list surface. Every
// list in the app runs the same search/filter/paginate sequence; each
// view owns its own View value and nothing is shared or persisted.
//
// Any change to the criteria resets the page to 1, because the surviving
// set may no longer reach the stored page.
type View struct {
	Filter   Filter
	Page     int
	PageSize int
}

// NewView returns a view on page 1 with no criteria set.
func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{Page: 1, PageSize: pageSize}
}

func (v *View) SetSearch(text string) {
	v.Filter.SearchText = text
	v.Page = 1
}

func (v *View) SetTab(tab TypeKey) {
	v.Filter.ActiveTab = tab
	v.Page = 1
}

func (v *View) SetLabels(labels []string) {
	v.Filter.SelectedLabels = labels
	v.Page = 1
}

func (v *View) SetTimeRange(r TimeRange) {
	v.Filter.TimeRange = r
	v.Page = 1
}

// Apply runs the pipeline over the current state and returns the visible
// page. Recomputed in full on every call; the result is a pure function
// of the inputs.
func (v *View) Apply(activities []RawActivity, now time.Time) PageResult[RawActivity] {
	filtered := FilterActivities(activities, v.Filter, now)
	return Paginate(filtered, v.Page, v.PageSize)
}

// Next advances one page, bounded by the page count of the last Apply.
func (v *View) Next(totalPages int) {
	if v.Page < totalPages {
		v.Page++
	}
}

// Prev goes back one page, never below 1.
func (v *View) Prev() {
	if v.Page > 1 {
		v.Page--
	}
}
