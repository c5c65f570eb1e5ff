package detectors

import (
	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// Detector inspects one file and returns its findings in match order.
type Detector func(path string, data []byte) []types.Finding

// Markup returns the accessibility detectors in the order they run on each
// file: every image finding precedes every button finding.
func Markup(cfg config.Accessibility) []Detector {
	return []Detector{
		ImageMissingAlt(cfg.ImageMissingAlt),
		ButtonMissingLabel(cfg.ButtonMissingLabel),
	}
}

// RunAll applies ds to one file, concatenating results.
func RunAll(ds []Detector, path string, data []byte) []types.Finding {
	var out []types.Finding
	for _, d := range ds {
		out = append(out, d(path, data)...)
	}
	return out
}
