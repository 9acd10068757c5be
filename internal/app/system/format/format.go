// Package format holds the pure display-formatting helpers used by the
// admin dashboard and templates. No function here has side effects.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Int groups an integer with thousands separators: 1234567 → "1,234,567".
func Int(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// Currency renders an amount with a currency code: "INR 12,500.50".
// An empty code defaults to INR, the backend's billing currency.
func Currency(amount float64, code string) string {
	if code == "" {
		code = "INR"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int(amount*100 + 0.5)
	return fmt.Sprintf("%s %s%s.%02d", code, sign, Int(cents/100), cents%100)
}

// Percent renders a growth figure with an explicit sign: "+12.5%", "-3.0%",
// "0.0%".
func Percent(v float64) string {
	switch {
	case v > 0:
		return fmt.Sprintf("+%.1f%%", v)
	case v < 0:
		return fmt.Sprintf("%.1f%%", v)
	}
	return "0.0%"
}

// RelativeTime buckets a timestamp for the activity feed: "Just now" under
// a minute, then minutes, hours, days, and finally the absolute date once
// the event is a week old.
func RelativeTime(at, now time.Time) string {
	d := now.Sub(at)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		n := int(d.Hours())
		if n == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", n)
	case d < 7*24*time.Hour:
		n := int(d.Hours() / 24)
		if n == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", n)
	}
	return at.Format("Jan 2, 2006")
}
