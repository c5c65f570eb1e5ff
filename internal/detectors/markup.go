package detectors

import (
	"github.com/dlclark/regexp2"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// An <img> tag, up to the next '>', with no alt= anywhere inside it. The
// value of alt is not inspected; alt="" suppresses the finding.
var reImgNoAlt = regexp2.MustCompile(`<img\b(?![^>]*\balt=)[^>]*>`, regexp2.IgnoreCase)

// A <button> whose opening tag carries no aria-label, aria-labelledby or
// title, and whose body is only whitespace or a single empty <i></i>. Any
// other body (visible text, nested markup) never matches.
var reButtonNoLabel = regexp2.MustCompile(
	`<button\b(?![^>]*(aria-label|aria-labelledby|title))[^>]*>(\s*|<i[^>]*></i>)</button>`,
	regexp2.IgnoreCase,
)

// ImageMissingAlt flags <img> tags without an alt attribute.
func ImageMissingAlt(rule config.Rule) Detector {
	return func(path string, data []byte) []types.Finding {
		return findAll(path, data, reImgNoAlt, rule)
	}
}

// ButtonMissingLabel flags empty or icon-only buttons without an
// accessible label.
func ButtonMissingLabel(rule config.Rule) Detector {
	return func(path string, data []byte) []types.Finding {
		return findAll(path, data, reButtonNoLabel, rule)
	}
}
