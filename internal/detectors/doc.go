// Package detectors implements the heuristic checks run by the scanners.
// Each detector reports zero or more findings for a given file path and its
// decoded content. Matching is textual; nothing here parses markup or PHP.
package detectors
