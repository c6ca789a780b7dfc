package util

import (
	"fmt"
	"math"
	"strings"
)

// FormatDuration formats a number of hours as "{h}h {m}m".
// The magnitude is used, so a negative duration reads like a positive one.
func FormatDuration(hours float64) string {
	abs := math.Abs(hours)
	h := math.Floor(abs)
	// Minutes are rounded on their own, so 59.5 and up reads "60m"
	m := math.Round((abs - h) * 60)

	return fmt.Sprintf("%dh %dm", int64(h), int64(m))
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// ShortID returns the id with its type prefix removed, for compact listings
func ShortID(id string) string {
	if idx := strings.Index(id, "_"); idx != -1 && idx < len(id)-1 {
		rest := id[idx+1:]
		if len(rest) > 8 {
			return rest[:8]
		}
		return rest
	}
	return id
}
