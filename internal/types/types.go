package types

// Severity is the coarse level attached to a finding. The vocabulary is
// fixed and carries no ordering.
type Severity string

const (
	SevNotice  Severity = "NOTICE"
	SevWarning Severity = "WARNING"
)

// Valid reports whether s is part of the known vocabulary.
func (s Severity) Valid() bool {
	return s == SevNotice || s == SevWarning
}

// Finding describes one reported issue: the rule that fired, the file and
// 1-based line it points at, and a human readable message. File is empty
// for findings that are not tied to a file.
type Finding struct {
	Rule     string   `json:"rule"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report is the ordered set of findings produced by one scan.
type Report struct {
	Results []Finding `json:"results"`
}

// Add appends findings in discovery order.
func (r *Report) Add(fs ...Finding) {
	r.Results = append(r.Results, fs...)
}
