package resumes

// ParsedResume is the transient record produced by one parse run. It is
// constructed once, consumed by the report builder and the presentation
// layer, and never mutated afterwards.
type ParsedResume struct {
	Email     string
	Phone     string
	Skills    []string
	Education []string
	RawText   string

	// Error is set exclusively when extraction failed; the remaining
	// fields are unused in that case.
	Error string
}

// Failed reports whether the parse run produced an error marker.
func (r ParsedResume) Failed() bool {
	return r.Error != ""
}
