// Copyright (c) 2017-2021, AT&T Intellectual Property.
// All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package schema models a compiled YANG schema tree: the node and type
// hierarchy walked by the command line parser. Value validation, when/must
// evaluation and YANG-text compilation are out of scope here; this package
// only exposes what a schema-directed walk needs.
package schema

import (
	"errors"
	"sort"
)

// Status is a node's or type-member's deprecation status.
type Status int

const (
	Current Status = iota
	Deprecated
	Obsolete
)

func (s Status) String() string {
	switch s {
	case Current:
		return "current"
	case Deprecated:
		return "deprecated"
	case Obsolete:
		return "obsolete"
	default:
		return "unknown"
	}
}

// Node is the common surface every schema tree element exposes. Concrete
// kinds are Container, List, Leaf, LeafList, Choice and Case; callers type
// switch on the concrete kind rather than relying on virtual dispatch, per
// the closed enumeration the parser state machine matches on.
type Node interface {
	Name() string
	Module() string
	Namespace() string
	Parent() Node
	Children() []Node
	Config() bool
	Status() Status
	Description() string

	// ExtCompletion is an extension-provided "<datastore>:<xpath>" query
	// string overriding the default completion source for this node, or
	// "" if the node carries none.
	ExtCompletion() string

	addChild(Node) error
	setParent(Node)
}

type node struct {
	name          string
	namespace     string
	module        string
	desc          string
	config        bool
	status        Status
	parent        Node
	children      []Node
	childIndex    map[string]int
	extCompletion string
}

func newNode(name, namespace, module, desc string, config bool, status Status) node {
	return node{
		name:       name,
		namespace:  namespace,
		module:     module,
		desc:       desc,
		config:     config,
		status:     status,
		childIndex: make(map[string]int),
	}
}

func (n *node) Name() string          { return n.name }
func (n *node) Namespace() string     { return n.namespace }
func (n *node) Module() string        { return n.module }
func (n *node) Description() string   { return n.desc }
func (n *node) Config() bool          { return n.config }
func (n *node) Status() Status        { return n.status }
func (n *node) Children() []Node      { return n.children }
func (n *node) ExtCompletion() string { return n.extCompletion }
func (n *node) Parent() Node          { return n.parent }
func (n *node) setParent(p Node)      { n.parent = p }

// SetExtCompletion records an extension-provided completion query for the
// node, of the form "<datastore>:<xpath>". Used by fixture builders; the
// schema compiler that produced a real tree would set this during compile.
func SetExtCompletion(n Node, xpath string) {
	switch v := n.(type) {
	case *Container:
		v.extCompletion = xpath
	case *List:
		v.extCompletion = xpath
	case *Leaf:
		v.extCompletion = xpath
	case *LeafList:
		v.extCompletion = xpath
	}
}

func (n *node) addChild(ch Node) error {
	if _, exists := n.childIndex[ch.Name()]; exists {
		return errors.New("schema: redefinition of name " + ch.Name())
	}
	n.childIndex[ch.Name()] = len(n.children)
	n.children = append(n.children, ch)
	return nil
}

// Container is a YANG container: a non-repeating grouping of children,
// optionally a "presence" container (one that exists independent of
// whether its children are set).
type Container struct {
	node
	presence bool
}

func NewContainer(name, namespace, module, desc string, presence, config bool, status Status) *Container {
	n := newNode(name, namespace, module, desc, config, status)
	return &Container{node: n, presence: presence}
}

func (c *Container) Presence() bool { return c.presence }

// AddChild attaches ch as a configuration child of parent, wiring the
// parent back-reference. Augmentation is modelled simply: the augmenting
// module's children are added directly, keeping their own Module()/
// Namespace(), exactly as find_child requires (spec.md 4.A).
func AddChild(parent, ch Node) error {
	if err := parent.addChild(ch); err != nil {
		return err
	}
	ch.setParent(parent)
	return nil
}

// List is a YANG list: a repeating entry keyed by one or more leaves.
// Key leaves are tracked separately from the entry's other children,
// because the parser consumes keys under dedicated rules (positional or
// named) before ever calling find_child on the entry body.
type List struct {
	node
	keys      []*Leaf
	orderedBy string
}

func NewList(name, namespace, module, desc string, keys []*Leaf, config bool, status Status) *List {
	n := newNode(name, namespace, module, desc, config, status)
	for _, k := range keys {
		k.isKey = true
	}
	return &List{node: n, keys: keys, orderedBy: "system"}
}

func (l *List) Keys() []*Leaf     { return l.keys }
func (l *List) OrderedBy() string { return l.orderedBy }
func (l *List) SetOrderedByUser() { l.orderedBy = "user" }

// Leaf is a single scalar value node.
type Leaf struct {
	node
	typ        Type
	mandatory  bool
	extDefault string
	hasExtDef  bool
	isKey      bool
}

func NewLeaf(name, namespace, module, desc string, typ Type, mandatory, config bool, status Status) *Leaf {
	n := newNode(name, namespace, module, desc, config, status)
	return &Leaf{node: n, typ: typ, mandatory: mandatory}
}

func (l *Leaf) Type() Type      { return l.typ }
func (l *Leaf) Mandatory() bool { return l.mandatory }

// IsKey reports whether this leaf is one of its enclosing list's keys.
// Subtree completion (spec.md 4.C.4) skips key leaves: they are
// surfaced through the list's own key-consumption logic instead.
func (l *Leaf) IsKey() bool { return l.isKey }

// SetExtDefault records an extension-provided default value for a list-key
// leaf (spec.md 4.A node_ext_default), so Opts.DefaultKeys can omit it.
func (l *Leaf) SetExtDefault(value string) {
	l.extDefault = value
	l.hasExtDef = true
}

func (l *Leaf) ExtDefault() (string, bool) { return l.extDefault, l.hasExtDef }

// LeafList is a repeating scalar value node.
type LeafList struct {
	node
	typ       Type
	orderedBy string
}

func NewLeafList(name, namespace, module, desc string, typ Type, config bool, status Status) *LeafList {
	n := newNode(name, namespace, module, desc, config, status)
	return &LeafList{node: n, typ: typ, orderedBy: "system"}
}

func (l *LeafList) Type() Type        { return l.typ }
func (l *LeafList) OrderedBy() string { return l.orderedBy }

// Choice is transparent in the tree the parser walks: it has no XPath
// presence of its own, and neither do its Case children.
type Choice struct {
	node
	defaultCase string
}

func NewChoice(name, namespace, module, desc string, config bool, status Status) *Choice {
	n := newNode(name, namespace, module, desc, config, status)
	return &Choice{node: n}
}

func (c *Choice) DefaultCase() string     { return c.defaultCase }
func (c *Choice) SetDefaultCase(s string) { c.defaultCase = s }

// Case is equally transparent; its children are surfaced as if they were
// direct children of the enclosing choice's parent.
type Case struct {
	node
}

func NewCase(name, namespace, module, desc string, config bool, status Status) *Case {
	n := newNode(name, namespace, module, desc, config, status)
	return &Case{node: n}
}

// IsTransparent reports whether n has no XPath presence of its own
// (Choice and Case), matching the parser's "Choice / Case: transparent"
// dispatch rule (spec.md 4.C.2).
func IsTransparent(n Node) bool {
	switch n.(type) {
	case *Choice, *Case:
		return true
	default:
		return false
	}
}

// SortedByName returns ns sorted by Name, for deterministic completion
// enumeration order when a fixture builds children out of order.
func SortedByName(ns []Node) []Node {
	out := make([]Node, len(ns))
	copy(out, ns)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
