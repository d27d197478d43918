package strutil

// DefaultFill is the marker appended to truncated strings.
const DefaultFill = "…"

// Limit truncates s to at most max runes, appending a fill marker when
// truncation happens. The marker defaults to DefaultFill; pass a fill
// argument to override it. Strings within the limit come back unchanged.
// A non-positive max yields just the marker for non-empty input.
func Limit(s string, max int, fill ...string) string {
	marker := DefaultFill
	if len(fill) > 0 {
		marker = fill[0]
	}
	if max < 0 {
		max = 0
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + marker
}
