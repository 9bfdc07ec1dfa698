package parse

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	DefaultFilename = "<string>"
	MaxIncludeDepth = 10
)

type parseOpts struct {
	filename       string
	includeDir     string
	fsys           fs.FS
	strictSep      bool
	strictAssign   bool
	colonGroups    bool
	colonNonGroups bool
}

type ParseOption func(*parseOpts)

// WithFilename sets the file label recorded on parsed nodes and in
// errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// IncludeDir sets the directory relative include paths resolve against.
func IncludeDir(dir string) ParseOption {
	return func(o *parseOpts) { o.includeDir = dir }
}

// IncludeFS reads included files from fsys instead of the operating
// system. Paths in fsys are slash separated and unrooted.
func IncludeFS(fsys fs.FS) ParseOption {
	return func(o *parseOpts) { o.fsys = fsys }
}

// StrictSeparators requires every setting to be terminated by ';' or ','.
func StrictSeparators(v bool) ParseOption {
	return func(o *parseOpts) { o.strictSep = v }
}

// AssignTokens selects ':' rather than '=' as the assignment token for
// group and non-group settings. It only affects parsing under
// StrictAssign.
func AssignTokens(colonGroups, colonNonGroups bool) ParseOption {
	return func(o *parseOpts) {
		o.colonGroups = colonGroups
		o.colonNonGroups = colonNonGroups
	}
}

// StrictAssign rejects assignment tokens other than those selected by
// AssignTokens.
func StrictAssign(v bool) ParseOption {
	return func(o *parseOpts) { o.strictAssign = v }
}

func (o *parseOpts) resolve(p string) string {
	if o.fsys != nil {
		if o.includeDir == "" || path.IsAbs(p) {
			return path.Clean(strings.TrimPrefix(p, "/"))
		}
		return path.Join(o.includeDir, p)
	}
	if o.includeDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.includeDir, p)
}

func (o *parseOpts) glob(pattern string) ([]string, error) {
	if o.fsys != nil {
		return fs.Glob(o.fsys, pattern)
	}
	return filepath.Glob(pattern)
}

func (o *parseOpts) readFile(name string) ([]byte, error) {
	if o.fsys != nil {
		return fs.ReadFile(o.fsys, name)
	}
	return os.ReadFile(name)
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, `*?[`)
}
