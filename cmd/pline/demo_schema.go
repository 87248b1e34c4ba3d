// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"

	"github.com/sdcio/pline/schema"
)

// demoProvider is a fixed-schema stand-in for the schema compiler this
// tree does not carry (see DESIGN.md): AcquireModules hands back a
// small, always-available "system" module so the CLI has something
// real to walk end to end.
type demoProvider struct{}

func (demoProvider) AcquireModules(context.Context) ([]*schema.Module, error) {
	return []*schema.Module{demoModule()}, nil
}

func (demoProvider) ReleaseModules() {}

func demoModule() *schema.Module {
	hostname := schema.NewLeaf("hostname", "urn:demo:system", "system", "the system's configured hostname",
		schema.NewString([]schema.URange{{Min: 1, Max: 64}}, nil, "", false), false, true, schema.Current)
	domain := schema.NewLeaf("domain", "urn:demo:system", "system", "the system's DNS search domain",
		schema.NewString(nil, nil, "", false), false, true, schema.Current)
	sys := schema.NewContainer("system", "urn:demo:system", "system", "top level system settings", false, true, schema.Current)
	_ = schema.AddChild(sys, hostname)
	_ = schema.AddChild(sys, domain)

	ifName := schema.NewLeaf("name", "urn:demo:system", "system", "the interface name", schema.NewString(nil, nil, "", false), true, true, schema.Current)
	mtu := schema.NewLeaf("mtu", "urn:demo:system", "system", "the interface's maximum transmission unit",
		schema.NewUinteger(16, []schema.URange{{Min: 68, Max: 65535}}, "1500", true), false, true, schema.Current)
	enabled := schema.NewLeaf("enabled", "urn:demo:system", "system", "whether the interface is administratively up",
		schema.NewBoolean("true", true), false, true, schema.Current)
	iface := schema.NewList("interface", "urn:demo:system", "system", "a network interface", []*schema.Leaf{ifName}, true, schema.Current)
	_ = schema.AddChild(iface, ifName)
	_ = schema.AddChild(iface, mtu)
	_ = schema.AddChild(iface, enabled)

	return &schema.Module{
		Name:        "demo-system",
		Revision:    "2024-01-01",
		Implemented: true,
		Compiled:    true,
		Root:        []schema.Node{sys, iface},
	}
}
