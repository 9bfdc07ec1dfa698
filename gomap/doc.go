// Package gomap converts between setting trees and Go values.
//
// # Usage
//
//	type Server struct {
//		Host    string
//		Port    int     `setting:"field=port"`
//		Timeout float64 `setting:"optional"`
//		Limits  []int32
//	}
//	var s Server
//	err := gomap.FromIR(cfg.Lookup("server"), &s)
//
//	node, err := gomap.ToIR(s)
//
// Only exported struct fields are converted. Field matching is case
// sensitive; the setting name is the field name unless the field tag
// names another. Tags are comma separated:
//
//   - field=name: the setting name
//   - omit: never converted
//   - optional: omitted by ToIR when zero
//   - required: FromIR fails when the setting is missing
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - setting trees
package gomap
