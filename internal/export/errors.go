// Package export serializes rendered document markup into downloadable
// surrogate formats: a Word-compatible HTML file and a print-triggered PDF shell.
package export

// ErrExportUnavailable indicates the rendered markup root is missing, so there
// is nothing to export. This failure is always surfaced to the user, never
// dropped silently.
type ErrExportUnavailable struct {
	Reason string
}

func (e *ErrExportUnavailable) Error() string {
	return "export unavailable: " + e.Reason
}
