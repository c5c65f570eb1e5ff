package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

func TestReadmeHeaders_TwoPresent(t *testing.T) {
	d := ReadmeHeaders(catalog(t).Readme)
	got := d("plugin/readme.txt", []byte("Plugin Name: X\nStable tag: 1.0\n"))
	require.Len(t, got, 3)
	var msgs []string
	for _, f := range got {
		assert.Equal(t, "readme-missing-header", f.Rule)
		assert.Equal(t, "plugin/readme.txt", f.File)
		assert.Equal(t, 1, f.Line)
		assert.Equal(t, types.SevNotice, f.Severity)
		msgs = append(msgs, f.Message)
	}
	assert.Equal(t, []string{
		"Missing header: Requires at least:",
		"Missing header: Tested up to:",
		"Missing header: Requires PHP:",
	}, msgs)
}

func TestReadmeHeaders_AllPresentAnywhere(t *testing.T) {
	d := ReadmeHeaders(catalog(t).Readme)
	txt := "=== X ===\nsee Plugin Name: X and Stable tag: 1\n" +
		"Requires at least: 6.0\nTested up to: 6.5\n  Requires PHP: 8.0"
	assert.Empty(t, d("readme.txt", []byte(txt)))
}

func TestReadmeHeaders_CaseSensitive(t *testing.T) {
	d := ReadmeHeaders(catalog(t).Readme)
	got := d("readme.txt", []byte("plugin name: x\nStable tag: 1\nRequires at least: 1\nTested up to: 1\nRequires PHP: 7"))
	require.Len(t, got, 1)
	assert.Equal(t, "Missing header: Plugin Name:", got[0].Message)
}

func TestReadmeMissing(t *testing.T) {
	f := ReadmeMissing(catalog(t).Readme)
	assert.Equal(t, types.Finding{
		Rule:     "readme-missing",
		File:     "",
		Line:     1,
		Severity: types.SevWarning,
		Message:  "readme.txt not found at plugin root.",
	}, f)
}
