package detectors

import (
	"fmt"
	"strings"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// ReadmeHeaders reports every required header label absent from the readme
// text. Containment is a plain substring test, so a label anywhere in the
// file counts. Findings point at line 1.
func ReadmeHeaders(cfg config.Readme) Detector {
	return func(path string, data []byte) []types.Finding {
		var out []types.Finding
		text := string(data)
		for _, h := range cfg.RequiredHeaders {
			if strings.Contains(text, h) {
				continue
			}
			f := cfg.MissingHeader.Finding(path, 1)
			f.Message = fmt.Sprintf(cfg.MissingHeader.Message, h)
			out = append(out, f)
		}
		return out
	}
}

// ReadmeMissing is the single finding emitted when no readme exists.
func ReadmeMissing(cfg config.Readme) types.Finding {
	return cfg.Missing.Finding("", 1)
}
