package expiry

import "time"

const dateLayout = "2006-01-02"

// Windows are the day spans the notification screens offer. Window 0 is the
// special "already expired" bucket.
var Windows = []int{0, 15, 30, 45, 60, 90, 180}

func ValidWindow(window int) bool {
	for _, w := range Windows {
		if w == window {
			return true
		}
	}
	return false
}

// DaysUntil returns the whole days between today and the stored expiry
// date. The second return is false when the date does not parse; such
// records are silently left out of the reports rather than failing them.
func DaysUntil(expiryDate string, today time.Time) (int, bool) {
	d, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return 0, false
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24), true
}

// InWindow reports whether a document with the given expiry date belongs in
// the window. Window 0 collects documents already expired; a positive
// window collects documents expiring within that many days, excluding ones
// already expired.
func InWindow(expiryDate string, window int, today time.Time) bool {
	days, ok := DaysUntil(expiryDate, today)
	if !ok {
		return false
	}
	if window == 0 {
		return days <= 0
	}
	return days > 0 && days <= window
}
