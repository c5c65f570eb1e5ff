package core

import (
	"github.com/DemeWebsolutions/Phantom.ai/internal/engine"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Finding = types.Finding
type Report = types.Report
type Severity = types.Severity

const (
	SevNotice  = types.SevNotice
	SevWarning = types.SevWarning
)

// ErrInvalidRoot is returned when the scan root is missing or not a directory.
var ErrInvalidRoot = engine.ErrInvalidRoot

// ScanAccessibility runs the markup accessibility scanner.
func ScanAccessibility(cfg Config) (Report, error) {
	return engine.Accessibility(cfg)
}

// ScanReadmeI18n runs the readme header and translation text-domain scanner.
func ScanReadmeI18n(cfg Config) (Report, error) {
	return engine.ReadmeI18n(cfg)
}
