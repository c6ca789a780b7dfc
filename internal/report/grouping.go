package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"ttrack/internal/models"
)

// GroupBy selects how report rows are bucketed
type GroupBy string

const (
	GroupByNone        GroupBy = "none"
	GroupByDay         GroupBy = "daily"
	GroupByWeek        GroupBy = "weekly"
	GroupByWeekOfMonth GroupBy = "weekly-of-month"
)

// ParseGroupBy accepts the GroupBy names plus the short forms day and week
func ParseGroupBy(s string) (GroupBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return GroupByNone, nil
	case "day", "daily":
		return GroupByDay, nil
	case "week", "weekly":
		return GroupByWeek, nil
	case "week-of-month", "weekly-of-month":
		return GroupByWeekOfMonth, nil
	}
	return GroupByNone, fmt.Errorf("unknown grouping %q (use none, daily, weekly or weekly-of-month)", s)
}

// Group is a bucket of entries sharing a day or week
type Group struct {
	Key     string
	Title   string
	Entries []models.TimeEntry
	Hours   float64
}

// WeekOfMonth returns the 1-based Monday-started week of the month t falls in
func WeekOfMonth(t time.Time) int {
	year, month, _ := t.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	firstMonday, _ := WeekRange(firstOfMonth)
	tMonday, _ := WeekRange(t)

	days := int(math.Round(tMonday.Sub(firstMonday).Hours() / 24))
	return days/7 + 1
}

// WeekRange returns the Monday and Sunday of t's week, at midnight
func WeekRange(t time.Time) (time.Time, time.Time) {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	year, month, day := t.Date()
	start := time.Date(year, month, day-offset+1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 6)
	return start, end
}

// GroupKey returns a sortable key for t; keys of the same bucket are equal
func GroupKey(t time.Time, by GroupBy) string {
	switch by {
	case GroupByDay:
		return t.Format("2006-01-02")
	case GroupByWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GroupByWeekOfMonth:
		year, month, _ := t.Date()
		return fmt.Sprintf("%d-%02d-W%d", year, month, WeekOfMonth(t))
	}
	return ""
}

// GroupTitle returns a human readable heading for t's bucket
func GroupTitle(t time.Time, by GroupBy) string {
	switch by {
	case GroupByDay:
		return t.Format("Monday, 02 Jan 2006")
	case GroupByWeek:
		start, end := WeekRange(t)
		return fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	case GroupByWeekOfMonth:
		start, end := WeekRange(t)

		// Clamp to the month of t
		year, month, _ := t.Date()
		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		if start.Before(firstOfMonth) {
			start = firstOfMonth
		}
		if end.After(lastOfMonth) {
			end = lastOfMonth
		}

		return fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	}
	return ""
}

// GroupEntries buckets entries by start time, newest bucket first.
// Entry order within a bucket is preserved. GroupByNone yields a single untitled group.
func GroupEntries(entries []models.TimeEntry, by GroupBy) []Group {
	if by == GroupByNone || by == "" {
		g := Group{Entries: entries}
		for i := range entries {
			g.Hours += entries[i].Hours()
		}
		return []Group{g}
	}

	groups := make(map[string]*Group)
	var keys []string
	for _, e := range entries {
		key := GroupKey(e.StartDatetime, by)
		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key, Title: GroupTitle(e.StartDatetime, by)}
			groups[key] = g
			keys = append(keys, key)
		}
		g.Entries = append(g.Entries, e)
		g.Hours += e.Hours()
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]Group, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	return out
}
