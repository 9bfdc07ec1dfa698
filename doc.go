// Package setting reads, edits and writes hierarchical configuration
// files in the libconfig format.
//
// A [Config] owns one tree of settings rooted in an unnamed group. It is
// populated by parsing text or a file, queried with paths such as
// "server.limits[2]", edited through the [ir.Node] API and written back.
//
//	cfg, err := setting.ReadFile("app.cfg", setting.WithAutoConvert(true))
//	if err != nil {
//		d := setting.Diagnose(err)
//		...
//	}
//	port, ok := cfg.LookupInt32("server.port")
//
// Parsing is all or nothing: a Config whose read fails keeps its
// previous tree.
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - setting nodes
//   - github.com/signadot/setting-format/go-setting/parse - parser
//   - github.com/signadot/setting-format/go-setting/encode - writer
//   - github.com/signadot/setting-format/go-setting/eval - expressions
//   - github.com/signadot/setting-format/go-setting/patch - JSON patches
package setting
