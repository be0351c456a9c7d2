package format

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateLayout is the token layout used when none is given.
const DefaultDateLayout = "YYYY/MM/DD HH:mm"

var dateTokens = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// Date formats t with YYYY, MM, DD, HH, mm and ss tokens.
// The zero time formats as an empty string.
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(dateTokens.Replace(layout))
}

// RelativeTime describes how long ago t was relative to now, in Japanese.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	seconds := int64(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < 60:
		return fmt.Sprintf("%d秒前", seconds)
	case seconds < 60*60:
		return fmt.Sprintf("%d分前", seconds/60)
	case seconds < 24*60*60:
		return fmt.Sprintf("%d時間前", seconds/3600)
	}

	days := seconds / 86400
	switch {
	case days < 7:
		return fmt.Sprintf("%d日前", days)
	case days < 30:
		return fmt.Sprintf("%d週間前", days/7)
	case days/30 < 12:
		return fmt.Sprintf("%dヶ月前", days/30)
	default:
		return fmt.Sprintf("%d年前", days/365)
	}
}
