// SPDX-License-Identifier: MPL-2.0

// Package complete renders a parsed command line's completion
// candidates - either as value/name suggestions (completion mode) or
// as descriptive help text (help mode) - per spec.md 4.D.
package complete

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sdcio/pline/datastore"
	"github.com/sdcio/pline/pline"
	"github.com/sdcio/pline/schema"
)

// PatMask is a bitset over pline.Pat, letting a caller restrict
// rendering to e.g. only list-key positions.
type PatMask uint16

func MaskFor(pats ...pline.Pat) PatMask {
	var m PatMask
	for _, p := range pats {
		m |= 1 << uint(p)
	}
	return m
}

// AllPats matches every positional attribute tag.
const AllPats PatMask = ^PatMask(0)

func (m PatMask) has(p pline.Pat) bool { return m&(1<<uint(p)) != 0 }

// Print renders pl's completions to w. help selects help mode (schema
// descriptions and type descriptors) over completion mode (bare names
// and values); mask restricts which Pat values are rendered;
// existingOnly suppresses anything not materialized in sess.
func Print(ctx context.Context, w io.Writer, sess datastore.Session, editingDS datastore.Datastore, pl *pline.ParseLine, help bool, mask PatMask, existingOnly bool) error {
	currentDS := editingDS
	restore := func() error {
		if currentDS != editingDS {
			currentDS = editingDS
		}
		return nil
	}
	defer restore()

	for _, c := range pl.Compls {
		if !mask.has(c.Pat) {
			continue
		}

		ds := editingDS
		if c.HasXpath && c.Datastore != "" {
			if parsed, ok := datastore.ParseDatastore(c.Datastore); ok {
				ds = parsed
			}
		}
		currentDS = ds

		if help {
			if err := printHelp(ctx, w, sess, ds, c, existingOnly); err != nil {
				return err
			}
			continue
		}
		if err := printCompletion(ctx, w, sess, ds, c, existingOnly); err != nil {
			return err
		}
	}

	return nil
}

func printHelp(ctx context.Context, w io.Writer, sess datastore.Session, ds datastore.Datastore, c *pline.Compl, existingOnly bool) error {
	if c.Node == nil {
		return nil
	}

	if c.Kind == pline.TypeKind {
		typ := leafType(c.Node)
		if typ == nil {
			return nil
		}
		return printTypeHelp(w, c.Node, typ)
	}

	if existingOnly {
		materialized, err := isMaterialized(ctx, sess, ds, c)
		if err != nil {
			return err
		}
		if !materialized {
			return nil
		}
	}

	desc := firstLine(c.Node.Description())
	if desc == "" {
		desc = c.Node.Name()
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", c.Node.Name(), desc)
	return err
}

func printCompletion(ctx context.Context, w io.Writer, sess datastore.Session, ds datastore.Datastore, c *pline.Compl, existingOnly bool) error {
	if c.Kind == pline.TypeKind {
		if c.HasXpath && sess != nil {
			node, err := sess.GetData(ctx, ds, c.Xpath, 0)
			if err != nil {
				return err
			}
			if node != nil {
				for _, v := range node.YangDataValuesNoSorting() {
					if _, err := fmt.Fprintf(w, "%s\n", escapeSpace(v)); err != nil {
						return err
					}
				}
			}
		}
		if c.Node == nil || existingOnly {
			return nil
		}
		typ := leafType(c.Node)
		if typ == nil {
			return nil
		}
		return printTypeValues(w, typ)
	}

	if c.Node == nil {
		return nil
	}
	if existingOnly {
		materialized, err := isMaterialized(ctx, sess, ds, c)
		if err != nil {
			return err
		}
		if !materialized {
			return nil
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", c.Node.Name())
	return err
}

func leafType(n schema.Node) schema.Type {
	switch v := n.(type) {
	case *schema.Leaf:
		return v.Type()
	case *schema.LeafList:
		return v.Type()
	default:
		return nil
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// escapeSpace escapes whitespace in an existing-data value so one
// printed line always corresponds to one candidate, mirroring the
// source's faux_str_c_esc_space.
func escapeSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ':
			b.WriteString(`\ `)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isMaterialized implements the materialization check (spec.md 4.D):
// a node counts as materialized iff a shallow query at its xpath
// returns an instance whose value differs from the leaf's
// extension-defined default, or any instance at all when there is no
// such default. DataNode carries no default flag, so a stored value
// equal to a schema-statement default counts as materialized.
func isMaterialized(ctx context.Context, sess datastore.Session, ds datastore.Datastore, c *pline.Compl) (bool, error) {
	if sess == nil || !c.HasXpath {
		return false, nil
	}
	node, err := sess.GetData(ctx, ds, c.Xpath, 1)
	if err != nil {
		return false, err
	}
	if node == nil {
		return false, nil
	}

	var ext string
	var hasExt bool
	if leaf, ok := c.Node.(*schema.Leaf); ok {
		ext, hasExt = leaf.ExtDefault()
	}

	values := node.YangDataValues()
	if len(values) == 0 {
		// A container/list/leaf-list entry with no scalar value of
		// its own (e.g. a presence container) is materialized by mere
		// existence.
		return true, nil
	}
	for _, v := range values {
		if !hasExt || v != ext {
			return true, nil
		}
	}
	return false, nil
}
