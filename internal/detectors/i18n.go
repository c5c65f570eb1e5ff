package detectors

import (
	"bufio"
	"bytes"
	"errors"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// translationCall builds the candidate-line pattern: one of the given
// function names at a word boundary, then optional spaces and '('. Word
// characters and spaces are Unicode-aware, so a name glued to a non-ASCII
// identifier is not a call.
func translationCall(functions []string) (*regexp2.Regexp, error) {
	if len(functions) == 0 {
		return nil, errors.New("no translation functions configured")
	}
	quoted := make([]string, len(functions))
	for i, fn := range functions {
		quoted[i] = regexp2.Escape(fn)
	}
	return regexp2.Compile(`\b(?:`+strings.Join(quoted, "|")+`)\s*\(`, regexp2.None)
}

// MissingTextDomain flags translation calls that look like they lack the
// text-domain argument. A line is flagged when it holds a call, contains
// both parentheses and contains no comma at all. Calls spanning lines are
// not seen, and any comma on the line suppresses the finding.
func MissingTextDomain(rule config.Rule, functions []string) (Detector, error) {
	re, err := translationCall(functions)
	if err != nil {
		return nil, err
	}
	return func(path string, data []byte) []types.Finding {
		var out []types.Finding
		sc := bufio.NewScanner(bytes.NewReader(data))
		// lines are unbounded; a minified template must not stop the scan
		sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
		line := 0
		for sc.Scan() {
			line++
			t := sc.Text()
			if ok, err := re.MatchString(t); err != nil || !ok {
				continue
			}
			if strings.Contains(t, "(") && strings.Contains(t, ")") && !strings.Contains(t, ",") {
				out = append(out, rule.Finding(path, line))
			}
		}
		return out
	}, nil
}
