package format

// Truncate shortens s to at most max runes, ending with suffix when cut.
// suffix counts towards max; an empty suffix defaults to "...".
func Truncate(s string, max int, suffix string) string {
	if suffix == "" {
		suffix = "..."
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	keep := max - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + suffix
}
