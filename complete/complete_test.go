// SPDX-License-Identifier: MPL-2.0

package complete_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sdcio/pline/complete"
	"github.com/sdcio/pline/datastore"
	"github.com/sdcio/pline/pline"
	"github.com/sdcio/pline/schema"
)

func TestPrintNodeCompletionBareNames(t *testing.T) {
	hostname := schema.NewLeaf("hostname", "urn:m", "m", "system hostname", schema.NewString(nil, nil, "", false), false, true, schema.Current)
	domain := schema.NewLeaf("domain", "urn:m", "m", "dns domain", schema.NewString(nil, nil, "", false), false, true, schema.Current)

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{
			{Kind: pline.NodeKind, Node: hostname, Pat: pline.Leaf},
			{Kind: pline.NodeKind, Node: domain, Pat: pline.Leaf},
		},
	}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, nil, datastore.Running, pl, false, complete.AllPats, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "hostname\ndomain\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestPrintNodeHelpNameAndDescription(t *testing.T) {
	hostname := schema.NewLeaf("hostname", "urn:m", "m", "system hostname\nmore detail", schema.NewString(nil, nil, "", false), false, true, schema.Current)

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{{Kind: pline.NodeKind, Node: hostname, Pat: pline.Leaf}},
	}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, nil, datastore.Running, pl, true, complete.AllPats, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "hostname\nsystem hostname\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestPrintTypeHelpNumericRange(t *testing.T) {
	mtu := schema.NewLeaf("mtu", "urn:m", "m", "", schema.NewUinteger(16, []schema.URange{{Min: 68, Max: 65535}}, "", false), false, true, schema.Current)

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{{Kind: pline.TypeKind, Node: mtu, Pat: pline.LeafValue}},
	}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, nil, datastore.Running, pl, true, complete.AllPats, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if b.String() != "[68..65535]\n" {
		t.Errorf("got %q", b.String())
	}
}

func TestPrintTypeValuesEnum(t *testing.T) {
	status := schema.NewLeaf("status", "urn:m", "m", "", schema.NewEnumeration([]schema.Enum{{Name: "up"}, {Name: "down"}}, "", false), false, true, schema.Current)

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{{Kind: pline.TypeKind, Node: status, Pat: pline.LeafValue}},
	}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, nil, datastore.Running, pl, false, complete.AllPats, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if b.String() != "up\ndown\n" {
		t.Errorf("got %q", b.String())
	}
}

func TestPrintTypeValuesIdentityref(t *testing.T) {
	base := schema.NewIdentity("transport", "n", "urn:n", schema.Current)
	tcp := schema.NewIdentity("tcp", "n", "urn:n", schema.Current)
	udp := schema.NewIdentity("udp", "n", "urn:n", schema.Current)
	base.AddDerived(tcp)
	base.AddDerived(udp)

	proto := schema.NewLeaf("proto", "urn:m", "m", "", schema.NewIdentityref(base, "", false), false, true, schema.Current)

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{{Kind: pline.TypeKind, Node: proto, Pat: pline.LeafValue}},
	}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, nil, datastore.Running, pl, false, complete.AllPats, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if b.String() != "tcp\nudp\n" {
		t.Errorf("got %q", b.String())
	}
}

func TestPrintMaskFiltersByPat(t *testing.T) {
	name := schema.NewLeaf("name", "urn:m", "m", "", schema.NewString(nil, nil, "", false), true, true, schema.Current)
	mtu := schema.NewLeaf("mtu", "urn:m", "m", "", schema.NewUinteger(16, nil, "", false), false, true, schema.Current)

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{
			{Kind: pline.NodeKind, Node: name, Pat: pline.ListKey},
			{Kind: pline.NodeKind, Node: mtu, Pat: pline.Leaf},
		},
	}

	var b strings.Builder
	mask := complete.MaskFor(pline.ListKey)
	if err := complete.Print(context.Background(), &b, nil, datastore.Running, pl, false, mask, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if b.String() != "name\n" {
		t.Errorf("got %q, want only the list-key completion", b.String())
	}
}

func TestPrintExistingOnlySuppressesUnmaterialized(t *testing.T) {
	hostname := schema.NewLeaf("hostname", "urn:m", "m", "", schema.NewString(nil, nil, "", false), false, true, schema.Current)

	sess := datastore.NewFakeSession()
	sess.Put(datastore.Running, "/m:sys/m:hostname", datastore.NewDataNode("hostname", nil, []string{"alpha"}))

	present := &pline.Compl{Kind: pline.NodeKind, Node: hostname, Pat: pline.Leaf, HasXpath: true, Xpath: "/m:sys/m:hostname"}
	absent := &pline.Compl{Kind: pline.NodeKind, Node: hostname, Pat: pline.Leaf, HasXpath: true, Xpath: "/m:sys/m:other"}

	pl := &pline.ParseLine{Compls: []*pline.Compl{present, absent}}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, sess, datastore.Running, pl, false, complete.AllPats, true); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if b.String() != "hostname\n" {
		t.Errorf("got %q, want exactly one materialized completion", b.String())
	}
}

func TestPrintTypeCompletionQueriesExistingValues(t *testing.T) {
	iface := schema.NewLeaf("name", "urn:m", "m", "", schema.NewString(nil, nil, "", false), true, true, schema.Current)

	sess := datastore.NewFakeSession()
	sess.Put(datastore.Running, "/m:iface/name", datastore.NewDataNode("name", nil, []string{"eth0", "eth1"}))

	pl := &pline.ParseLine{
		Compls: []*pline.Compl{{Kind: pline.TypeKind, Node: iface, Pat: pline.ListKey, HasXpath: true, Xpath: "/m:iface/name"}},
	}

	var b strings.Builder
	if err := complete.Print(context.Background(), &b, sess, datastore.Running, pl, false, complete.AllPats, true); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "eth0\neth1\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}
