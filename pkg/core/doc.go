// Package core provides a small, stable facade over the internal scanners
// for external integrations. It re-exports a narrow API surface so other
// tools can depend on a stable import path without reaching into internal
// packages.
//
// Example:
//
//	rep, err := core.ScanAccessibility(core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	_ = core.MarshalReport(os.Stdout, rep)
package core
