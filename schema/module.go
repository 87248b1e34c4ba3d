// SPDX-License-Identifier: MPL-2.0

package schema

// Module is one loaded YANG module as the parser's module-selection loop
// (spec.md 4.C.1) sees it: a name/revision pair, an implementation and
// compilation state, and its top-level configuration nodes.
//
// Root holds the module's top-level nodes directly rather than behind a
// synthetic container Node: the module root has no XPath presence and
// no schema parent of its own (a top-level node's Parent() is nil, the
// same sentinel the parser cursor uses for "at the root"), so giving it
// a Node identity would let it leak into the cursor as if it were a
// real schema step.
type Module struct {
	Name        string
	Revision    string
	Implemented bool
	Compiled    bool
	Root        []Node
}

// HasData reports whether the module contributes any configuration nodes
// at all; a module with zero root children can never match an input
// token and is skipped up front.
func (m *Module) HasData() bool {
	return len(m.Root) > 0
}
