package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Count formats n with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Listeners formats a listener count, or returns "" when unknown.
func Listeners(n int64) string {
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return "1 listener"
	}
	return humanize.Comma(n) + " listeners"
}

// Plays formats a play count, or returns "" when unknown.
func Plays(n int64) string {
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return "1 play"
	}
	return humanize.Comma(n) + " plays"
}

// Duration formats d as m:ss, or h:mm:ss past an hour. Zero is "".
func Duration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Match formats a 0-1 similarity score as a percentage.
func Match(score float64) string {
	return fmt.Sprintf("%d%%", int(score*100+0.5))
}
