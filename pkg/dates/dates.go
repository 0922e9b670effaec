// Package dates selects the calendar dates a command operates on.
package dates

import (
	"fmt"
	"time"
)

// Layout is the date format accepted on the command line.
const Layout = "2006-01-02"

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid date: %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// Range expands [beg, end] into consecutive days, inclusive on both ends.
// A reversed range is empty.
func Range(beg, end time.Time) []time.Time {
	var out []time.Time
	for d := beg; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Week returns the Monday-through-Sunday week containing today.
func Week(today time.Time) []time.Time {
	monday := today.AddDate(0, 0, -mondayOffset(today.Weekday()))
	return Range(monday, monday.AddDate(0, 0, 6))
}

func mondayOffset(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - int(time.Monday)
}

// Workyesterday returns the previous working day: the day before on
// Tuesday through Saturday, Friday when today is Sunday or Monday.
func Workyesterday(today time.Time) time.Time {
	switch today.Weekday() {
	case time.Sunday:
		return today.AddDate(0, 0, -2)
	case time.Monday:
		return today.AddDate(0, 0, -3)
	default:
		return today.AddDate(0, 0, -1)
	}
}
