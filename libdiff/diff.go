package libdiff

import (
	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order. It
// returns nil when the trees are equal.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.value(from, to)
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(op Op, from, to *ir.Node) {
	c := Change{Op: op, From: from, To: to}
	if to != nil {
		c.Path = to.Path()
	} else {
		c.Path = from.Path()
	}
	d.changes = append(d.changes, c)
}

func (d *differ) value(from, to *ir.Node) {
	switch {
	case from.Type() != to.Type():
		d.add(Replace, from, to)
	case from.IsGroup():
		d.group(from, to)
	case from.IsArray(), from.IsList():
		d.seq(from, to)
	case !ir.Equal(from, to):
		d.add(Replace, from, to)
	}
}

// group aligns the member names of from and to; members with the same
// name are compared recursively.
func (d *differ) group(from, to *ir.Node) {
	runes := map[string]rune{}
	fromRunes := mapTo(runes, from, memberKey)
	toRunes := mapTo(runes, to, memberKey)
	fi, ti := 0, 0
	for _, diff := range diffpatch.New().DiffMainRunes(fromRunes, toRunes, false) {
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				d.add(Delete, from.At(fi), nil)
				fi++
			case diffpatch.DiffEqual:
				d.value(from.At(fi), to.At(ti))
				fi++
				ti++
			case diffpatch.DiffInsert:
				d.add(Insert, nil, to.At(ti))
				ti++
			}
		}
	}
}

// seq aligns the elements of from and to by their written form. Runs of
// deletions directly followed by insertions are paired up and compared
// as replacements.
func (d *differ) seq(from, to *ir.Node) {
	runes := map[string]rune{}
	fromRunes := mapTo(runes, from, elemKey)
	toRunes := mapTo(runes, to, elemKey)
	fi, ti := 0, 0
	var deleted []*ir.Node
	flush := func() {
		for _, n := range deleted {
			d.add(Delete, n, nil)
		}
		deleted = deleted[:0]
	}
	for _, diff := range diffpatch.New().DiffMainRunes(fromRunes, toRunes, false) {
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				deleted = append(deleted, from.At(fi))
				fi++
			case diffpatch.DiffEqual:
				flush()
				fi++
				ti++
			case diffpatch.DiffInsert:
				if len(deleted) > 0 {
					d.value(deleted[0], to.At(ti))
					deleted = deleted[1:]
				} else {
					d.add(Insert, nil, to.At(ti))
				}
				ti++
			}
		}
	}
	flush()
}

func memberKey(n *ir.Node) string { return n.Name() }

func elemKey(n *ir.Node) string {
	return n.Type().String() + " " + encode.MustString(n)
}

// mapTo returns one rune per child of node, allocating a new rune for
// each key not yet in m.
func mapTo(m map[string]rune, node *ir.Node, key func(*ir.Node) string) []rune {
	rs := make([]rune, 0, node.Len())
	for _, c := range node.Elements() {
		k := key(c)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs = append(rs, r)
	}
	return rs
}
