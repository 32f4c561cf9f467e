// Package shear removes field fragments from serialized documents without
// parsing them.
//
// Given a type and an XML-like document produced by encoding a value of a
// type that embeds it, shear cuts out exactly the text a generic encoder
// wrote for the type's marked fields, as either an element or an attribute,
// and leaves every other byte alone.
//
// # Field Names
//
// A field's document name is its declared name with a dash before each run
// of upper-case letters, lower-cased:
//
//	FeedRate                 -> feed-rate
//	feedRateInSettingsHolder -> feed-rate-in-settings-holder
//
// # Recognized Syntax
//
// For each marked field both forms are tried, element first:
//
//	<feed-rate>5</feed-rate>        element with closing tag
//	<feed-rate units="mm" />        self-closing element with attributes
//	<driver feed-rate="5">          attribute
//
// # Marking Fields
//
// By default a field is marked when it carries an xml struct tag. Embedded
// fields are not declared fields of the outer type and are never purged:
//
//	type Driver struct {
//	    Name string `xml:"name"`
//	}
//
//	type AsyncDriver struct {
//	    Driver
//	    Timeout int `xml:"timeout"`
//	}
//
// Other sources can be plugged in with WithFieldSource: a Registry of
// hand-maintained descriptors (optionally loaded from YAML), or any
// FieldSource implementation. Types implementing FieldLister report their
// own fields and skip reflection entirely.
//
// # Basic Usage
//
//	p, _ := shear.NewPurger[AsyncDriver]()
//	base := p.Purge(ctx, `<AsyncDriver><name>d</name><timeout>5</timeout></AsyncDriver>`)
//	// base == `<AsyncDriver><name>d</name></AsyncDriver>`
//
//	// Re-read an AsyncDriver as a Driver through the XML codec.
//	d, _ := shear.Convert[AsyncDriver, Driver](ctx, xml.New(), async)
//
// # Escaping
//
// Escape renders arbitrary text safe for element or attribute content using
// numeric character references, with newlines written as <br/>.
//
// # Assumptions
//
// Each marked field's element or attribute text is expected to occur at most
// once in the document. Only the first occurrence is removed, and an
// unrelated fragment that happens to match is removed just the same. Partial
// or unexpected shapes are skipped, never reported as errors.
package shear
