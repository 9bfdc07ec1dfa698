// Package kpath parses and formats setting paths.
//
// A path is a sequence of segments separated by '.', '/' or ':'. A
// segment is a group member name, a bracketed index or a bare index:
//   - name - Group member access
//   - [index] - Array or list element
//   - index - Array or list element, bare form
//
// An index may follow a name directly, so "a.list[2]", "a.list.[2]" and
// "a.list.2" all denote the same setting.
//
// # Usage
//
//	// Parse a path
//	kp, err := kpath.Parse("servers[0].port")
//
//	// Canonical form
//	s := kp.String() // "servers[0].port"
//
//	// Split off the last segment
//	parent, last := kpath.RSplit("servers[0].port") // "servers[0]", "port"
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - Lookup resolves paths against a tree
package kpath
