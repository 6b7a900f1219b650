package impexp

import "strings"

// splitQuoted splits a line on commas that fall outside double-quote
// spans, producing at most max fields; the remainder of the line lands
// in the last field. A small explicit scanner is used instead of
// encoding/csv because export rows quote only the comment and never
// escape embedded quotes, which encoding/csv rejects.
func splitQuoted(line string, max int) []string {
	fields := make([]string, 0, max)
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes && len(fields) < max-1:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, b.String())
}

// stripQuotes removes every double-quote character. Quotes embedded in
// a comment are lost on import; the export side never escaped them, so
// there is nothing to unescape.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
