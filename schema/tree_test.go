// SPDX-License-Identifier: MPL-2.0

package schema_test

import (
	"testing"

	"github.com/sdcio/pline/schema"
)

func TestAddChildWiresParent(t *testing.T) {
	root := schema.NewContainer("sys", "urn:m", "m", "", false, true, schema.Current)
	leaf := schema.NewLeaf("hostname", "urn:m", "m", "", schema.NewString(nil, nil, "", false), false, true, schema.Current)

	if err := schema.AddChild(root, leaf); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	if leaf.Parent() != schema.Node(root) {
		t.Fatalf("child's Parent() does not point back to root")
	}
	if len(root.Children()) != 1 || root.Children()[0].Name() != "hostname" {
		t.Fatalf("root.Children() = %v, want [hostname]", root.Children())
	}
}

func TestAddChildRejectsDuplicateName(t *testing.T) {
	root := schema.NewContainer("sys", "urn:m", "m", "", false, true, schema.Current)
	a := schema.NewLeaf("x", "urn:m", "m", "", schema.NewEmpty(), false, true, schema.Current)
	b := schema.NewLeaf("x", "urn:m", "m", "", schema.NewEmpty(), false, true, schema.Current)

	if err := schema.AddChild(root, a); err != nil {
		t.Fatalf("first AddChild: %v", err)
	}
	if err := schema.AddChild(root, b); err == nil {
		t.Fatalf("expected error adding duplicate child name")
	}
}

func TestIsTransparent(t *testing.T) {
	choice := schema.NewChoice("proto", "urn:m", "m", "", true, schema.Current)
	ycase := schema.NewCase("tcp", "urn:m", "m", "", true, schema.Current)
	cont := schema.NewContainer("sys", "urn:m", "m", "", false, true, schema.Current)

	if !schema.IsTransparent(choice) {
		t.Errorf("Choice should be transparent")
	}
	if !schema.IsTransparent(ycase) {
		t.Errorf("Case should be transparent")
	}
	if schema.IsTransparent(cont) {
		t.Errorf("Container should not be transparent")
	}
}

func TestListKeysAndExtDefault(t *testing.T) {
	name := schema.NewLeaf("name", "urn:m", "m", "", schema.NewString(nil, nil, "", false), true, true, schema.Current)
	name.SetExtDefault("eth0")
	lst := schema.NewList("iface", "urn:m", "m", "", []*schema.Leaf{name}, true, schema.Current)

	if len(lst.Keys()) != 1 || lst.Keys()[0] != name {
		t.Fatalf("List.Keys() = %v, want [name]", lst.Keys())
	}
	def, ok := lst.Keys()[0].ExtDefault()
	if !ok || def != "eth0" {
		t.Fatalf("ExtDefault() = (%q, %v), want (eth0, true)", def, ok)
	}
}

func TestSortedByNameDoesNotMutateInput(t *testing.T) {
	b := schema.NewLeaf("b", "urn:m", "m", "", schema.NewEmpty(), false, true, schema.Current)
	a := schema.NewLeaf("a", "urn:m", "m", "", schema.NewEmpty(), false, true, schema.Current)
	in := []schema.Node{b, a}

	out := schema.SortedByName(in)

	if in[0].Name() != "b" {
		t.Fatalf("SortedByName mutated its input")
	}
	if out[0].Name() != "a" || out[1].Name() != "b" {
		t.Fatalf("SortedByName(%v) = %v, want [a b]", in, out)
	}
}
