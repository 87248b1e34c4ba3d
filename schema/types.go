// Copyright (c) 2017-2021, AT&T Intellectual Property. All rights reserved
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package schema

import "fmt"

/*
 * Value validation against a type is explicitly out of scope (spec.md
 * Non-goals). What remains is exactly what the completion renderer needs
 * to print a type descriptor: ranges, patterns, enum/identity/bit names,
 * union members and leafref targets. Each concrete type below carries only
 * that descriptive data, mirroring the teacher's one-struct-per-basetype
 * shape without its restriction/validation machinery.
 */

// Type is implemented by every concrete YANG type kind. Default reports
// the type's default value, distinguishing an explicit empty-string
// default from "no default" (a string type's default may legitimately be
// "").
type Type interface {
	Default() (string, bool)
	ytype()
}

type ytyp struct {
	def        string
	hasDefault bool
}

func (t ytyp) Default() (string, bool) {
	if t.hasDefault {
		return t.def, true
	}
	return "", false
}
func (ytyp) ytype() {}

// Range is an inclusive [Min, Max] numeric bound; a type may carry several
// disjoint ranges (YANG's "1..4 | 10..20" syntax).
type Range struct {
	Min, Max int64
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// URange is the unsigned counterpart to Range, for uint8/16/32/64.
type URange struct {
	Min, Max uint64
}

func (r URange) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Boolean is the YANG "boolean" type.
type Boolean struct{ ytyp }

func NewBoolean(def string, hasDef bool) *Boolean {
	return &Boolean{ytyp{def, hasDef}}
}

// Empty is the YANG "empty" type: present or absent, never valued.
type Empty struct{ ytyp }

func NewEmpty() *Empty { return &Empty{} }

// Integer is a signed numeric type (int8/16/32/64).
type Integer struct {
	ytyp
	BitWidth int
	Ranges   []Range
}

func NewInteger(bitWidth int, ranges []Range, def string, hasDef bool) *Integer {
	return &Integer{ytyp{def, hasDef}, bitWidth, ranges}
}

// Uinteger is an unsigned numeric type (uint8/16/32/64).
type Uinteger struct {
	ytyp
	BitWidth int
	Ranges   []URange
}

func NewUinteger(bitWidth int, ranges []URange, def string, hasDef bool) *Uinteger {
	return &Uinteger{ytyp{def, hasDef}, bitWidth, ranges}
}

// Decimal64 is a fixed-point decimal, with FractionDigits giving its scale.
type Decimal64 struct {
	ytyp
	FractionDigits int
	Ranges         []Range
}

func NewDecimal64(fractionDigits int, ranges []Range, def string, hasDef bool) *Decimal64 {
	return &Decimal64{ytyp{def, hasDef}, fractionDigits, ranges}
}

// Pattern is a single "pattern" restriction with optional error-message
// help text, shown to the user in help mode.
type Pattern struct {
	Expr string
	Help string
}

// StringType is the YANG "string" type.
type StringType struct {
	ytyp
	Lengths  []URange
	Patterns []Pattern
}

func NewString(lengths []URange, patterns []Pattern, def string, hasDef bool) *StringType {
	return &StringType{ytyp{def, hasDef}, lengths, patterns}
}

// Enum is one member of an Enumeration.
type Enum struct {
	Name   string
	Value  int
	Status Status
}

// Enumeration is the YANG "enumeration" type.
type Enumeration struct {
	ytyp
	Enums []Enum
}

func NewEnumeration(enums []Enum, def string, hasDef bool) *Enumeration {
	return &Enumeration{ytyp{def, hasDef}, enums}
}

// Identity is one member of an identity derivation tree. Derived lists the
// identities that directly extend this one; identity_prefix (spec.md 4.A)
// walks it recursively to resolve a bare identity name to its defining
// module.
type Identity struct {
	Name      string
	Module    string
	Namespace string
	Status    Status
	Derived   []*Identity
}

func NewIdentity(name, module, namespace string, status Status) *Identity {
	return &Identity{Name: name, Module: module, Namespace: namespace, Status: status}
}

// AddDerived registers child as a direct derivation of i.
func (i *Identity) AddDerived(child *Identity) { i.Derived = append(i.Derived, child) }

// Identityref is the YANG "identityref" type; Base is the identity its
// values must derive from.
type Identityref struct {
	ytyp
	Base *Identity
}

func NewIdentityref(base *Identity, def string, hasDef bool) *Identityref {
	return &Identityref{ytyp{def, hasDef}, base}
}

// InstanceId is the YANG "instance-identifier" type.
type InstanceId struct{ ytyp }

func NewInstanceId() *InstanceId { return &InstanceId{} }

// Bit is one member of a Bits type.
type Bit struct {
	Name string
	Pos  int
}

// Bits is the YANG "bits" type.
type Bits struct {
	ytyp
	Members []Bit
}

func NewBits(members []Bit) *Bits { return &Bits{Members: members} }

// Leafref is the YANG "leafref" type. Path is the raw (possibly relative,
// "../"-prefixed) path statement text; resolving it to an absolute,
// prefixed XPath against a concrete current position is the Schema
// Adapter's leafref_target_xpath operation (package adapter), not this
// type's job - the type only remembers the statement as written.
// RealType is the resolved type of the leafref's target leaf, carried
// alongside Path so the completion renderer can print the target's
// value set (ranges, enums, identities) without a live schema lookup.
type Leafref struct {
	ytyp
	Path     string
	RealType Type
}

func NewLeafref(path string, realType Type, def string, hasDef bool) *Leafref {
	return &Leafref{ytyp{def, hasDef}, path, realType}
}

// Union is the YANG "union" type; Members are tried by the caller in
// declaration order (e.g. when rendering each union member's value set,
// or recursing into a union's leafref/identityref members for completion
// purposes per spec.md 4.C.4).
type Union struct {
	ytyp
	Members []Type
}

func NewUnion(members []Type) *Union { return &Union{Members: members} }
