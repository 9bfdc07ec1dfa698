// Package ir provides the in-memory representation of configuration
// settings.
//
// # Overview
//
// A configuration is a tree of *Node values rooted in a group. Every
// setting, whether parsed from text, created programmatically or
// produced by a patch, is an ir.Node.
//
// # Node Types
//
// The Type of a node selects which payload it carries:
//
//   - NoneType: a freshly created setting with no value yet
//   - IntType, Int64Type: 32 and 64 bit integers
//   - FloatType: 64 bit IEEE float
//   - BoolType: boolean
//   - StringType: string
//   - ArrayType: ordered scalars, all of one type
//   - ListType: ordered settings of any type
//   - GroupType: named settings in insertion order
//
// # Structure Constraints
//
//   - Group members have unique names matching [A-Za-z*][-A-Za-z0-9_*]*.
//     Adding a duplicate fails with ErrDuplicateName.
//   - Array and list elements are unnamed.
//   - All elements of an array share one scalar type, fixed by the first
//     element. Adding another type fails with ErrTypeMismatch.
//   - A parent owns its children; Parent is a back reference. Nodes are
//     only ever created detached or as children, so the tree has no cycles.
//
// # Creating Nodes
//
//	root := ir.NewGroup()
//	grp, err := root.Add("server", ir.GroupType)
//	port, err := grp.Add("port", ir.IntType)
//	err = port.SetInt32(8080)
//
//	arr, err := grp.Add("ids", ir.ArrayType)
//	err = arr.SetElem(arr.Len(), ir.Int32(7)) // append
//
// # Typed Access
//
// Accessors return ErrTypeMismatch unless the stored type matches. When
// the tree has auto-convert on (SetAutoConvert), integers widen, floats
// truncate and integers and booleans convert into each other; see
// convert for the table. A setter never changes the type of a typed
// node: to store another type, remove the node and add a new one.
//
// # Paths
//
//	node := root.Lookup("server.ids[0]")
//	if node == nil {
//	    // no such setting
//	}
//
// Lookup never fails: malformed or unmatched paths return nil.
//
// # Removal
//
// Remove detaches a node. The node and its descendants are marked
// removed; further access through them returns ErrStaleReference.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself.
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/parse - Parses text into a tree
//   - github.com/signadot/setting-format/go-setting/encode - Encodes a tree to text
//   - github.com/signadot/setting-format/go-setting/ir/kpath - Path syntax
package ir
