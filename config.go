package setting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/parse"
)

// Config holds a setting tree and the options used to read and write
// it. A Config is not safe for concurrent use.
type Config struct {
	root *ir.Node
	opts Options
}

// New returns an empty Config.
func New(opts ...Option) *Config {
	c := &Config{opts: DefaultOptions()}
	for _, o := range opts {
		o(&c.opts)
	}
	c.root = c.newRoot()
	return c
}

func (c *Config) newRoot() *ir.Node {
	root := ir.NewGroup()
	root.SetAutoConvert(c.opts.AutoConvert)
	return root
}

func ReadString(src string, opts ...Option) (*Config, error) {
	return ReadBytes([]byte(src), opts...)
}

func ReadBytes(d []byte, opts ...Option) (*Config, error) {
	c := New(opts...)
	if err := c.ReadBytes(d); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadFile parses the file at path. Without an include directory,
// includes resolve relative to the directory of path.
func ReadFile(path string, opts ...Option) (*Config, error) {
	c := New(opts...)
	if err := c.ReadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) ReadString(src string) error {
	return c.ReadBytes([]byte(src))
}

// ReadBytes parses d and replaces the tree of c. On error c is
// unchanged.
func (c *Config) ReadBytes(d []byte) error {
	return c.read(d, c.opts.parseOptions(""))
}

// ReadFile parses the file at path and replaces the tree of c. On error
// c is unchanged.
func (c *Config) ReadFile(path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	popts := c.opts.parseOptions(path)
	if c.opts.IncludeDir == "" && c.opts.IncludeFS == nil {
		popts = append(popts, parse.IncludeDir(filepath.Dir(path)))
	}
	return c.read(d, popts)
}

func (c *Config) read(d []byte, popts []parse.ParseOption) error {
	root, err := parse.Parse(d, popts...)
	if err != nil {
		return err
	}
	root.SetAutoConvert(c.opts.AutoConvert)
	c.root = root
	return nil
}

// Root returns the root group. It is replaced by successful reads and by
// Clear.
func (c *Config) Root() *ir.Node { return c.root }

func (c *Config) Options() Options { return c.opts }

// SetOptions applies opts on top of the current options.
func (c *Config) SetOptions(opts ...Option) {
	for _, o := range opts {
		o(&c.opts)
	}
	c.root.SetAutoConvert(c.opts.AutoConvert)
}

// Clear replaces the tree with an empty root group. Nodes of the old
// tree stay valid but are no longer part of c.
func (c *Config) Clear() {
	c.root = c.newRoot()
}

// Lookup returns the setting at path, or nil.
func (c *Config) Lookup(path string) *ir.Node {
	n := c.root.Lookup(path)
	if debug.Lookup() {
		debug.Logf("lookup %q -> %v\n", path, n)
	}
	return n
}
