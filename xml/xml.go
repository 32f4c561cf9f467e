// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/shear"
)

// xmlCodec implements shear.Codec for XML.
type xmlCodec struct {
	indent string
}

// New returns an XML codec producing compact output.
func New() shear.Codec {
	return &xmlCodec{}
}

// NewIndented returns an XML codec that writes one element per line,
// nested elements indented by indent.
func NewIndented(indent string) shear.Codec {
	return &xmlCodec{indent: indent}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return xml.MarshalIndent(v, "", c.indent)
	}
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
