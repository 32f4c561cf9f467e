package shear

// Remove returns doc with the bytes covered by s cut out.
func Remove(doc string, s Span) string {
	return doc[:s.Begin] + doc[s.End:]
}
