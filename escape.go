package shear

import (
	"strconv"
	"strings"
)

// Escape makes s safe to embed in element or attribute text.
//
// Every code point above 127 and each of " ' < > & becomes a decimal numeric
// character reference (&#60; for <). Newlines become <br/>. Everything else
// is copied as is. Invalid UTF-8 bytes are emitted as &#65533;.
func Escape(s string) string {
	var out strings.Builder
	out.Grow(max(16, len(s)))

	for _, r := range s {
		switch {
		case r > 127, r == '"', r == '\'', r == '<', r == '>', r == '&':
			out.WriteString("&#")
			out.WriteString(strconv.Itoa(int(r)))
			out.WriteByte(';')
		case r == '\n':
			out.WriteString("<br/>")
		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}
