package utils

import "time"

// ReportTime matches the timestamp columns of the role trust report.
const ReportTime = "2006-01-02 15:04:05 MST"

// TimeOr formats a time value using the given layout, or returns fallback if zero.
func TimeOr(t time.Time, layout, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.Format(layout)
}
