package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidRoot is returned when the scan root is missing, unreadable or
// not a directory.
var ErrInvalidRoot = errors.New("invalid scan root")

// FileResult is one eligible file produced by Walk: either its decoded
// content, or Err explaining why it was skipped. Skipped files never reach
// a report.
type FileResult struct {
	Path    string
	Content string
	Err     error
}

// Skipped reports whether the file could not be read.
func (r FileResult) Skipped() bool { return r.Err != nil }

// WalkOptions selects which files Walk yields.
type WalkOptions struct {
	// Include holds base-name globs; a file must match one of them.
	Include []string
	// SkipHiddenDirs drops every directory below the root whose name starts
	// with a dot. The root itself is never treated as hidden.
	SkipHiddenDirs bool
}

// Walk traverses root and invokes handle for each eligible file. Files of a
// directory are visited in name order before any of its subdirectories,
// which are then descended in name order. Symlinked directories are not
// followed. A subtree that cannot be listed is skipped; only a bad root is
// an error.
func Walk(root string, opts WalkOptions, log *zap.Logger, handle func(FileResult)) error {
	if err := checkRoot(root); err != nil {
		return err
	}
	filter, err := newNameFilter(opts.Include)
	if err != nil {
		return err
	}
	w := walker{opts: opts, filter: filter, log: log, handle: handle}
	return w.dir(root, true)
}

func checkRoot(root string) error {
	st, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return nil
}

type walker struct {
	opts   WalkOptions
	filter nameFilter
	log    *zap.Logger
	handle func(FileResult)
}

func (w walker) dir(dir string, top bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if top {
			return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
		}
		w.log.Debug("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return nil
	}
	var subdirs []string
	for _, e := range entries {
		p := joinPath(dir, e.Name())
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			// symlinked directories are listed but never descended
			if st, err := os.Stat(p); err == nil && st.IsDir() {
				continue
			}
		}
		if isDir {
			if w.opts.SkipHiddenDirs && isHiddenDir(e.Name()) {
				continue
			}
			subdirs = append(subdirs, p)
			continue
		}
		if !w.filter.match(e.Name()) {
			continue
		}
		content, err := readFile(p)
		w.handle(FileResult{Path: p, Content: content, Err: err})
	}
	for _, sd := range subdirs {
		if err := w.dir(sd, false); err != nil {
			return err
		}
	}
	return nil
}

// readFile reads p fully and decodes it as text: invalid UTF-8 sequences
// are dropped and CRLF / CR line endings become LF.
func readFile(p string) (string, error) {
	st, err := os.Stat(p)
	if err != nil {
		return "", err
	}
	if !st.Mode().IsRegular() {
		return "", fmt.Errorf("%s: not a regular file", p)
	}
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return decodeText(b), nil
}

func decodeText(b []byte) string {
	s := strings.ToValidUTF8(string(b), "")
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
