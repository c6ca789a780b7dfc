package report

import (
	"testing"
	"time"
)

func TestParseGroupBy(t *testing.T) {
	tests := map[string]GroupBy{
		"":              GroupByNone,
		"day":           GroupByDay,
		"Weekly":        GroupByWeek,
		"week-of-month": GroupByWeekOfMonth,
	}
	for in, want := range tests {
		got, err := ParseGroupBy(in)
		if err != nil || got != want {
			t.Errorf("ParseGroupBy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseGroupBy("hourly"); err == nil {
		t.Error("expected error for unknown grouping")
	}
}

func TestWeekHelpers(t *testing.T) {
	// Wednesday
	d := time.Date(2025, 10, 22, 14, 0, 0, 0, time.UTC)

	start, end := WeekRange(d)
	if start.Format("2006-01-02") != "2025-10-20" || end.Format("2006-01-02") != "2025-10-26" {
		t.Errorf("WeekRange() = %v - %v", start, end)
	}
	if got := WeekOfMonth(d); got != 4 {
		t.Errorf("WeekOfMonth() = %d, want 4", got)
	}
	if got := GroupKey(d, GroupByWeek); got != "2025-W43" {
		t.Errorf("GroupKey(week) = %q", got)
	}
	if got := GroupKey(d, GroupByWeekOfMonth); got != "2025-10-W4" {
		t.Errorf("GroupKey(week-of-month) = %q", got)
	}

	// Week of Oct 1 2025 (a Wednesday) clamps to the month
	first := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	if got := GroupTitle(first, GroupByWeekOfMonth); got != "Oct 01 - Oct 05, 2025" {
		t.Errorf("GroupTitle() = %q", got)
	}
}

func TestGroupEntries_Weekly(t *testing.T) {
	entries := seedState().CompletedEntries()

	groups := GroupEntries(entries, GroupByWeek)
	// Oct 19 2025 is a Sunday, Oct 20 a Monday
	if len(groups) != 2 {
		t.Fatalf("expected 2 weekly groups, got %d", len(groups))
	}
	if groups[0].Key != "2025-W43" || groups[0].Hours != 2 {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Key != "2025-W42" || groups[1].Hours != 4.75 {
		t.Errorf("unexpected second group: %+v", groups[1])
	}
}
