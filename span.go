package shear

import "strings"

// Syntax identifies how a field was written into a document.
type Syntax string

const (
	// SyntaxElement is a tagged region: <name>...</name> or <name .../>.
	SyntaxElement Syntax = "element"

	// SyntaxAttribute is an attribute pair: name="...".
	SyntaxAttribute Syntax = "attribute"
)

// Span is a half-open byte range [Begin, End) into a document.
// A span is only meaningful for the exact string it was located in.
type Span struct {
	Begin int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Match is a located fragment.
type Match struct {
	Syntax Syntax
	Span   Span
}

// LocateElement finds the element form of name in doc.
//
// The opening tag is the earliest of "<name>" and "<name " (a tag carrying
// attributes). When both forms occur the earlier one is taken, never the
// later. The element ends at the first "/>" after the tag name or,
// failing that, just past the first "</name>". An opening tag with neither
// terminator after it yields no span.
func LocateElement(doc, name string) (Span, bool) {
	begin := earliest(
		strings.Index(doc, "<"+name+">"),
		strings.Index(doc, "<"+name+" "),
	)
	if begin < 0 {
		return Span{}, false
	}

	from := begin + len(name) + 2
	if k := indexFrom(doc, "/>", from); k >= 0 {
		return Span{Begin: begin, End: k + 2}, true
	}
	if k := indexFrom(doc, "</"+name+">", from); k >= 0 {
		return Span{Begin: begin, End: k + len(name) + 3}, true
	}

	return Span{}, false
}

// LocateAttribute finds the attribute form of name in doc: the leading
// space, name, =, and the quoted value up to the next double quote.
func LocateAttribute(doc, name string) (Span, bool) {
	begin := strings.Index(doc, " "+name+"=\"")
	if begin < 0 {
		return Span{}, false
	}

	if k := indexFrom(doc, "\"", begin+len(name)+3); k >= 0 {
		return Span{Begin: begin, End: k + 1}, true
	}

	return Span{}, false
}

// Locate runs both searches against doc and returns the element match
// followed by the attribute match, when present.
//
// Both spans are relative to doc. Removing one invalidates the other, so
// Locate is for inspection; Purger re-locates after every removal.
func Locate(doc, name string) []Match {
	var matches []Match
	if s, ok := LocateElement(doc, name); ok {
		matches = append(matches, Match{Syntax: SyntaxElement, Span: s})
	}
	if s, ok := LocateAttribute(doc, name); ok {
		matches = append(matches, Match{Syntax: SyntaxAttribute, Span: s})
	}
	return matches
}

// indexFrom is strings.Index starting at byte offset from.
func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// earliest returns the smaller non-negative index, or -1 if both are negative.
func earliest(a, b int) int {
	switch {
	case a < 0:
		return b
	case b < 0:
		return a
	}
	return min(a, b)
}
