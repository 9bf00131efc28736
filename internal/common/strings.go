package common

import "strings"

// UnknownStr is the String() value of unrecognized enum members.
const UnknownStr = "unknown"

// JoinNonEmpty joins the non-empty, whitespace-trimmed parts with a single space.
// Example: JoinNonEmpty("const", "char", "") -> "const char".
func JoinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " ")
}

// PadRight pads s with spaces up to width runes. Longer strings are returned as is.
func PadRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}

	return s + strings.Repeat(" ", width-n)
}

// MaxWidth returns the widest rune length among the strings, or 0 if there are none.
func MaxWidth(values ...string) int {
	width := 0

	for _, v := range values {
		width = max(width, len([]rune(v)))
	}

	return width
}
