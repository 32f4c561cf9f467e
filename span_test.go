package shear

import "testing"

func TestLocateElement(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		field  string
		want   string // fragment covered by the span
		wantOK bool
	}{
		{
			name:   "closing tag",
			doc:    "<a><some-field>5</some-field></a>",
			field:  "some-field",
			want:   "<some-field>5</some-field>",
			wantOK: true,
		},
		{
			name:   "self-closing with attributes",
			doc:    `<a><feed-rate value="5"/></a>`,
			field:  "feed-rate",
			want:   `<feed-rate value="5"/>`,
			wantOK: true,
		},
		{
			name:   "closing tag with attributes",
			doc:    `<a><feed-rate units="mm">5</feed-rate></a>`,
			field:  "feed-rate",
			want:   `<feed-rate units="mm">5</feed-rate>`,
			wantOK: true,
		},
		{
			name:   "empty element",
			doc:    "<a><x></x></a>",
			field:  "x",
			want:   "<x></x>",
			wantOK: true,
		},
		{
			name:   "nested content",
			doc:    "<a><x><y>1</y></x></a>",
			field:  "x",
			want:   "<x><y>1</y></x>",
			wantOK: true,
		},
		{
			name:   "earliest opening form wins",
			doc:    `<a><x k="1"/><x>2</x></a>`,
			field:  "x",
			want:   `<x k="1"/>`,
			wantOK: true,
		},
		{
			name:   "bare self-closing tag is not an opening tag",
			doc:    "<a><x/></a>",
			field:  "x",
			wantOK: false,
		},
		{
			name:   "opening tag without terminator",
			doc:    "<a><x>5",
			field:  "x",
			wantOK: false,
		},
		{
			name:   "longer name with same prefix",
			doc:    "<a><rate-limit>1</rate-limit></a>",
			field:  "rate",
			wantOK: false,
		},
		{
			name:   "case sensitive",
			doc:    "<a><Rate>1</Rate></a>",
			field:  "rate",
			wantOK: false,
		},
		{
			name:   "empty document",
			doc:    "",
			field:  "x",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := LocateElement(tt.doc, tt.field)
			if ok != tt.wantOK {
				t.Fatalf("LocateElement(%q, %q) ok = %v, want %v", tt.doc, tt.field, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := tt.doc[s.Begin:s.End]; got != tt.want {
				t.Errorf("LocateElement(%q, %q) covers %q, want %q", tt.doc, tt.field, got, tt.want)
			}
		})
	}
}

// A "/>" anywhere after the opening tag is taken as the terminator, even
// when it belongs to a later sibling.
func TestLocateElement_LaterSelfClosingWins(t *testing.T) {
	doc := "<a><x>1</x><y/></a>"
	s, ok := LocateElement(doc, "x")
	if !ok {
		t.Fatal("LocateElement() found nothing")
	}
	if got := doc[s.Begin:s.End]; got != "<x>1</x><y/>" {
		t.Errorf("LocateElement() covers %q, want %q", got, "<x>1</x><y/>")
	}
}

// Both opening forms present: whichever comes first in the document opens
// the element, in either order.
func TestLocateElement_EarlierOpeningForm(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{`<a><x>1</x><x k="2">3</x></a>`, "<x>1</x>"},
		{`<a><x k="2">3</x><x>1</x></a>`, `<x k="2">3</x>`},
	}

	for _, tt := range tests {
		s, ok := LocateElement(tt.doc, "x")
		if !ok {
			t.Fatalf("LocateElement(%q) found nothing", tt.doc)
		}
		if got := tt.doc[s.Begin:s.End]; got != tt.want {
			t.Errorf("LocateElement(%q) covers %q, want %q", tt.doc, got, tt.want)
		}
	}
}

func TestLocateAttribute(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		field  string
		want   string
		wantOK bool
	}{
		{
			name:   "quoted value",
			doc:    `<item rate="5" />`,
			field:  "rate",
			want:   ` rate="5"`,
			wantOK: true,
		},
		{
			name:   "empty value",
			doc:    `<item rate="" />`,
			field:  "rate",
			want:   ` rate=""`,
			wantOK: true,
		},
		{
			name:   "dashed name among others",
			doc:    `<d id="1" feed-rate="5000" name="x">`,
			field:  "feed-rate",
			want:   ` feed-rate="5000"`,
			wantOK: true,
		},
		{
			name:   "unterminated value",
			doc:    `<item rate="5`,
			field:  "rate",
			wantOK: false,
		},
		{
			name:   "suffix of longer name",
			doc:    `<item feed-rate="5">`,
			field:  "rate",
			wantOK: false,
		},
		{
			name:   "single quotes",
			doc:    `<item rate='5'>`,
			field:  "rate",
			wantOK: false,
		},
		{
			name:   "case sensitive",
			doc:    `<item Rate="5">`,
			field:  "rate",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := LocateAttribute(tt.doc, tt.field)
			if ok != tt.wantOK {
				t.Fatalf("LocateAttribute(%q, %q) ok = %v, want %v", tt.doc, tt.field, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := tt.doc[s.Begin:s.End]; got != tt.want {
				t.Errorf("LocateAttribute(%q, %q) covers %q, want %q", tt.doc, tt.field, got, tt.want)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	doc := `<a rate="1"><rate>2</rate></a>`
	matches := Locate(doc, "rate")

	if len(matches) != 2 {
		t.Fatalf("Locate() returned %d matches, want 2", len(matches))
	}
	if matches[0].Syntax != SyntaxElement {
		t.Errorf("matches[0].Syntax = %q, want %q", matches[0].Syntax, SyntaxElement)
	}
	if got := doc[matches[0].Span.Begin:matches[0].Span.End]; got != "<rate>2</rate>" {
		t.Errorf("element match covers %q, want %q", got, "<rate>2</rate>")
	}
	if matches[1].Syntax != SyntaxAttribute {
		t.Errorf("matches[1].Syntax = %q, want %q", matches[1].Syntax, SyntaxAttribute)
	}
	if got := doc[matches[1].Span.Begin:matches[1].Span.End]; got != ` rate="1"` {
		t.Errorf("attribute match covers %q, want %q", got, ` rate="1"`)
	}
}

func TestLocate_None(t *testing.T) {
	if matches := Locate("<a><b>1</b></a>", "rate"); len(matches) != 0 {
		t.Errorf("Locate() = %v, want no matches", matches)
	}
}

func TestSpan_Len(t *testing.T) {
	if got := (Span{Begin: 3, End: 10}).Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
	if got := (Span{Begin: 4, End: 4}).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		span Span
		want string
	}{
		{"middle", "abcdef", Span{Begin: 1, End: 3}, "adef"},
		{"prefix", "abcdef", Span{Begin: 0, End: 2}, "cdef"},
		{"suffix", "abcdef", Span{Begin: 4, End: 6}, "abcd"},
		{"everything", "abcdef", Span{Begin: 0, End: 6}, ""},
		{"empty span", "abcdef", Span{Begin: 2, End: 2}, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remove(tt.doc, tt.span); got != tt.want {
				t.Errorf("Remove(%q, %v) = %q, want %q", tt.doc, tt.span, got, tt.want)
			}
		})
	}
}

func TestRemove_DoesNotMutateInput(t *testing.T) {
	doc := "<a><x>1</x></a>"
	s, _ := LocateElement(doc, "x")
	_ = Remove(doc, s)

	if doc != "<a><x>1</x></a>" {
		t.Errorf("Remove() mutated input: %q", doc)
	}
}
