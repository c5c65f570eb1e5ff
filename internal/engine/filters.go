package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// nameFilter matches a file's base name against a set of globs.
type nameFilter []string

func newNameFilter(globs []string) (nameFilter, error) {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("invalid file glob %q", g)
		}
	}
	return nameFilter(globs), nil
}

func (f nameFilter) match(name string) bool {
	for _, g := range f {
		if ok, _ := doublestar.Match(g, name); ok {
			return true
		}
	}
	return false
}

func isHiddenDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

// joinPath appends name to dir the way reported paths are built: dir is
// kept verbatim and a separator is added only when dir lacks a trailing one.
// Unlike filepath.Join nothing is cleaned, so a root of "." yields "./a.php".
func joinPath(dir, name string) string {
	if dir == "" || strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
