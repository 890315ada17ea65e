package research

import "time"

const lookbackDays = 14

const dateLayout = "2006-01-02"

// Window is the date range a search is bounded to.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(now time.Time) Window {
	return Window{
		Start: now.AddDate(0, 0, -lookbackDays),
		End:   now,
	}
}

func (w Window) String() string {
	return w.Start.Format(dateLayout) + " to " + w.End.Format(dateLayout)
}
