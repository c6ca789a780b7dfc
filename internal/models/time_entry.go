package models

import (
	"time"
)

// TimeEntry is one interval (or in-progress interval) of tracked time
type TimeEntry struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	StartDatetime time.Time  `json:"startDatetime"`
	EndDatetime   *time.Time `json:"endDatetime"` // nil while running
	Notes         string     `json:"notes"`
	IsRunning     bool       `json:"isRunning"`
}

// Completed reports whether the entry has been stopped and carries an end time
func (e *TimeEntry) Completed() bool {
	return !e.IsRunning && e.EndDatetime != nil
}

// Hours returns the signed length of a completed entry in hours.
// Running or end-less entries contribute zero.
func (e *TimeEntry) Hours() float64 {
	if !e.Completed() {
		return 0
	}
	return HoursBetween(e.StartDatetime, *e.EndDatetime)
}

// Skewed reports whether a completed entry ends before it starts
func (e *TimeEntry) Skewed() bool {
	return e.Completed() && e.EndDatetime.Before(e.StartDatetime)
}

// HoursBetween returns (end - start) in hours, computed on milliseconds
func HoursBetween(start, end time.Time) float64 {
	ms := end.Sub(start).Milliseconds()
	return float64(ms) / float64(time.Hour/time.Millisecond)
}
