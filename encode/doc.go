// Package encode encodes IR nodes to configuration text.
//
// # Usage
//
//	root := ir.NewGroup()
//	n, _ := root.Add("name", ir.StringType)
//	n.SetString("alice")
//	err := encode.Encode(root, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(root, w, encode.TabWidth(4), encode.DefaultFormat(format.Hex))
//
// Groups are written as their member settings, so encoding a root group
// produces a complete configuration. Other nodes are written as a single
// value.
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - IR representation
//   - github.com/signadot/setting-format/go-setting/parse - Parse text to IR
package encode
