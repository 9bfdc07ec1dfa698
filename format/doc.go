// Package format defines the display formats for integer settings.
//
// # Usage
//
//	f, err := format.ParseFormat("hex")
//	if err != nil {
//	    return err
//	}
//	node.SetFormat(f)
//
// A node whose format is Default is written using the format configured
// on the encoder (see encode.DefaultFormat).
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - Settings carry a format hint
//   - github.com/signadot/setting-format/go-setting/encode - Encoding honours the hint
package format
