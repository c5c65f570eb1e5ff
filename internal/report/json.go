package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// WriteJSON emits r as a single-line JSON document followed by a newline.
// An empty report is written as {"results": []}, never null.
func WriteJSON(w io.Writer, r types.Report) error {
	if r.Results == nil {
		r.Results = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// ReadJSON decodes a report written by WriteJSON.
func ReadJSON(rd io.Reader) (types.Report, error) {
	var r types.Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return r, fmt.Errorf("decode report: %w", err)
	}
	if r.Results == nil {
		r.Results = []types.Finding{}
	}
	return r, nil
}
