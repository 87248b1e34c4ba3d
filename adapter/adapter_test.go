// SPDX-License-Identifier: MPL-2.0

package adapter_test

import (
	"testing"

	"github.com/sdcio/pline/adapter"
	"github.com/sdcio/pline/schema"
)

func TestFindChildSkipsNonConfig(t *testing.T) {
	hidden := schema.NewLeaf("state-only", "urn:m", "m", "", schema.NewEmpty(), false, false, schema.Current)
	visible := schema.NewLeaf("hostname", "urn:m", "m", "", schema.NewEmpty(), false, true, schema.Current)

	got := adapter.FindChild([]schema.Node{hidden, visible}, "hostname")
	if got != schema.Node(visible) {
		t.Fatalf("FindChild returned %v, want visible", got)
	}
	if adapter.FindChild([]schema.Node{hidden, visible}, "state-only") != nil {
		t.Fatalf("FindChild returned a non-config node")
	}
}

func TestFindChildAcrossAugmentation(t *testing.T) {
	// An augmenting module's child carries its own Module()/Namespace(),
	// but FindChild must still find it by name alongside native children.
	native := schema.NewLeaf("a", "urn:m", "m", "", schema.NewEmpty(), false, true, schema.Current)
	augmented := schema.NewLeaf("b", "urn:aug", "aug", "", schema.NewEmpty(), false, true, schema.Current)

	got := adapter.FindChild([]schema.Node{native, augmented}, "b")
	if got != schema.Node(augmented) {
		t.Fatalf("FindChild did not find augmented child")
	}
}

func TestIdentityPrefixWalksDerivationTree(t *testing.T) {
	transport := schema.NewIdentity("transport", "iana-if-type", "urn:iana", schema.Current)
	ethernet := schema.NewIdentity("ethernetCsmacd", "iana-if-type", "urn:iana", schema.Current)
	fastEther := schema.NewIdentity("fastEther", "custom-if-type", "urn:custom", schema.Current)
	transport.AddDerived(ethernet)
	ethernet.AddDerived(fastEther)

	if mod := adapter.IdentityPrefix([]*schema.Identity{transport}, "fastEther"); mod != "custom-if-type" {
		t.Errorf("IdentityPrefix(fastEther) = %q, want custom-if-type", mod)
	}
	if mod := adapter.IdentityPrefix([]*schema.Identity{transport}, "unknown"); mod != "" {
		t.Errorf("IdentityPrefix(unknown) = %q, want \"\"", mod)
	}
}

func TestLeafrefTargetXPathRelative(t *testing.T) {
	lr := schema.NewLeafref("../name", nil, "", false)
	current := `/if:interfaces/if:interface[name="eth0"]/if:type`

	got := adapter.LeafrefTargetXPath(lr, current)
	want := `/if:interfaces/if:interface[name="eth0"]/name`
	if got != want {
		t.Errorf("LeafrefTargetXPath = %q, want %q", got, want)
	}
}

func TestLeafrefTargetXPathAbsolute(t *testing.T) {
	lr := schema.NewLeafref("/if:interfaces/if:interface/if:name", nil, "", false)
	got := adapter.LeafrefTargetXPath(lr, `/ignored:path`)
	if got != lr.Path {
		t.Errorf("LeafrefTargetXPath = %q, want %q (unchanged)", got, lr.Path)
	}
}

func TestModuleIsInternalByNameAndRevision(t *testing.T) {
	mod := &schema.Module{Name: "ietf-yang-types", Revision: "2013-07-15"}
	if !adapter.ModuleIsInternal(mod, false) {
		t.Errorf("ietf-yang-types/2013-07-15 should be internal")
	}

	wrongRev := &schema.Module{Name: "ietf-yang-types", Revision: "2020-01-01"}
	if adapter.ModuleIsInternal(wrongRev, false) {
		t.Errorf("ietf-yang-types with an unrecognized revision should not be internal")
	}

	anyRev := &schema.Module{Name: "ietf-yang-library", Revision: "2019-01-04"}
	if !adapter.ModuleIsInternal(anyRev, false) {
		t.Errorf("ietf-yang-library should be internal regardless of revision")
	}

	noRevision := &schema.Module{Name: "ietf-yang-types", Revision: ""}
	if adapter.ModuleIsInternal(noRevision, false) {
		t.Errorf("a module with no revision can never match a fixed entry")
	}
}

func TestModuleIsInternalNACMGatedByOption(t *testing.T) {
	nacm := &schema.Module{Name: "ietf-netconf-acm", Revision: "2018-02-14"}
	if !adapter.ModuleIsInternal(nacm, false) {
		t.Errorf("ietf-netconf-acm should be internal when NACM is disabled")
	}
	if adapter.ModuleIsInternal(nacm, true) {
		t.Errorf("ietf-netconf-acm should not be internal when NACM is enabled")
	}
}
