package setting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/ir"
)

func (c *Config) Write(w io.Writer) error {
	if debug.Write() {
		debug.Logf("write options %+v\n", c.opts)
	}
	return encode.Encode(c.root, w, c.opts.encodeOptions()...)
}

func (c *Config) WriteString() string {
	buf := &strings.Builder{}
	// a strings.Builder never fails
	_ = c.Write(buf)
	return buf.String()
}

// WriteFile writes the tree to a temporary file next to path and renames
// it over path, so readers see either the old or the new content.
func (c *Config) WriteFile(path string) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}
	if c.opts.Fsync {
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("%w: %w", ir.ErrIO, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	return nil
}

// WriteNode writes n, which need not belong to c, with the options of c.
func (c *Config) WriteNode(w io.Writer, n *ir.Node) error {
	return encode.Encode(n, w, c.opts.encodeOptions()...)
}
