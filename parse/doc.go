// Package parse parses configuration text into IR nodes.
//
// # Usage
//
//	// Parse text
//	root, err := parse.Parse([]byte(`name = "alice"; age = 30;`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	root, err := parse.Parse(data,
//	    parse.WithFilename("app.cfg"),
//	    parse.IncludeDir("/etc/app"))
//
// The result is always a root group. Parsing is all or nothing: on error
// no tree is returned and the error is a [*Error] carrying file, line and
// column.
//
// # Includes
//
// A line `@include "path"` splices the settings of another file into the
// enclosing group. Paths are relative to the include directory and may be
// glob patterns; matches are included in lexical order.
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - IR representation
//   - github.com/signadot/setting-format/go-setting/encode - Encode IR to text
//   - github.com/signadot/setting-format/go-setting/token - Tokenization
package parse
