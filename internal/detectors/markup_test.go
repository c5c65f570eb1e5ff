package detectors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

func catalog(t *testing.T) config.Catalog {
	t.Helper()
	c, err := config.Default()
	require.NoError(t, err)
	return c
}

func lines(fs []types.Finding) []int {
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Line)
	}
	return out
}

func TestImageMissingAlt(t *testing.T) {
	d := ImageMissingAlt(catalog(t).Accessibility.ImageMissingAlt)
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no alt", input: `<img src="a.png">`, want: 1},
		{name: "empty alt", input: `<img src="a.png" alt="">`, want: 0},
		{name: "alt with value", input: `<img alt="logo" src="a.png">`, want: 0},
		{name: "upper case tag and attr", input: `<IMG SRC="a.png" ALT="x">`, want: 0},
		{name: "upper case tag no alt", input: `<IMG SRC="a.png">`, want: 1},
		{name: "self closing", input: `<img src="a.png" />`, want: 1},
		{name: "two tags one without alt", input: `<img alt=""><img src="b.png">`, want: 1},
		{name: "each occurrence counted", input: `<img src=1><img src=2><img src=3>`, want: 3},
		{name: "alt after a hyphen still counts", input: `<img data-alt="x">`, want: 0},
		{name: "alt as identifier suffix", input: `<img xalt="x">`, want: 1},
		{name: "imgur is not img", input: `<imgur src="x">`, want: 0},
		{name: "attributes across lines", input: "<img\n  src=\"a.png\"\n  alt=\"\">", want: 0},
		{name: "alt inside a later tag only", input: `<img alt= <img src="x">`, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d("page.html", []byte(tt.input))
			assert.Len(t, got, tt.want)
		})
	}
}

func TestImageMissingAlt_FindingShape(t *testing.T) {
	cat := catalog(t)
	d := ImageMissingAlt(cat.Accessibility.ImageMissingAlt)
	got := d("tpl/page.twig", []byte(`<img src="x">`))
	require.Len(t, got, 1)
	assert.Equal(t, types.Finding{
		Rule:     "a11y-img-alt-missing",
		File:     "tpl/page.twig",
		Line:     1,
		Severity: types.SevNotice,
		Message:  "Image tag missing alt attribute.",
	}, got[0])
}

func TestButtonMissingLabel(t *testing.T) {
	d := ButtonMissingLabel(catalog(t).Accessibility.ButtonMissingLabel)
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "bare empty button", input: `<button></button>`, want: 1},
		{name: "aria-label", input: `<button aria-label="x"></button>`, want: 0},
		{name: "aria-labelledby", input: `<button aria-labelledby="lbl"></button>`, want: 0},
		{name: "title", input: `<button title="Close"></button>`, want: 0},
		{name: "visible text", input: `<button>Submit</button>`, want: 0},
		{name: "whitespace body", input: "<button type=\"button\">  \n\t</button>", want: 1},
		{name: "icon only", input: `<button class="btn"><i class="fa fa-times"></i></button>`, want: 1},
		{name: "icon only with title", input: `<button title="Close"><i class="fa"></i></button>`, want: 0},
		{name: "icon plus text", input: `<button><i></i> Close</button>`, want: 0},
		{name: "icon with padding is not matched", input: `<button> <i></i> </button>`, want: 0},
		{name: "nested span is not evaluated", input: `<button><span></span></button>`, want: 0},
		{name: "case insensitive", input: `<BUTTON></BUTTON>`, want: 1},
		{name: "case insensitive label", input: `<button ARIA-LABEL="x"></button>`, want: 0},
		{name: "label substring in other attribute", input: `<button data-title="x"></button>`, want: 0},
		{name: "two buttons", input: `<button></button><button>Ok</button><button></button>`, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d("form.php", []byte(tt.input))
			assert.Len(t, got, tt.want)
		})
	}
}

func TestMarkup_LineAttribution(t *testing.T) {
	ds := Markup(catalog(t).Accessibility)
	content := strings.Join([]string{
		"<html>",
		"<body>",
		`  <img src="hero.png">`,
		`  <button></button>`,
		"</body>",
	}, "\n")
	got := RunAll(ds, "index.html", []byte(content))
	require.Len(t, got, 2)
	assert.Equal(t, "a11y-img-alt-missing", got[0].Rule)
	assert.Equal(t, 3, got[0].Line)
	assert.Equal(t, "a11y-button-label-missing", got[1].Rule)
	assert.Equal(t, 4, got[1].Line)
}

func TestMarkup_ImagesBeforeButtons(t *testing.T) {
	ds := Markup(catalog(t).Accessibility)
	content := "<button></button>\n<img src=a>\n<button></button>\n<img src=b>\n"
	got := RunAll(ds, "x.html", []byte(content))
	require.Len(t, got, 4)
	assert.Equal(t, []int{2, 4, 1, 3}, lines(got))
}

func TestMarkup_MultiByteContentKeepsLines(t *testing.T) {
	d := ImageMissingAlt(catalog(t).Accessibility.ImageMissingAlt)
	content := "<p>héllo wörld ünïcode ✓</p>\n<p>日本語</p>\n<img src=x>"
	got := d("i18n.html", []byte(content))
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Line)
}

func TestLineIndex(t *testing.T) {
	li := newLineIndex("ab\ncd\n\nef")
	assert.Equal(t, 1, li.lineAt(0))
	assert.Equal(t, 1, li.lineAt(2))
	assert.Equal(t, 2, li.lineAt(3))
	assert.Equal(t, 3, li.lineAt(6))
	assert.Equal(t, 4, li.lineAt(7))
	assert.Equal(t, 1, newLineIndex("").lineAt(0))
}
