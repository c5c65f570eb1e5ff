package core

import (
	"io"

	"github.com/DemeWebsolutions/Phantom.ai/internal/report"
)

// MarshalReport writes rep as the {"results": [...]} JSON document.
func MarshalReport(w io.Writer, rep Report) error {
	return report.WriteJSON(w, rep)
}

// UnmarshalReport decodes a report document, useful for ingestion tests.
func UnmarshalReport(r io.Reader) (Report, error) {
	return report.ReadJSON(r)
}
