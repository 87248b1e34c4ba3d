// SPDX-License-Identifier: MPL-2.0

// Package pline implements the schema-directed command line parser and
// its companion XPath builder: given a tokenized command line and a set
// of loaded YANG schema modules, it produces the XPath expressions the
// command addresses and the completion candidates valid at the point
// parsing stopped.
package pline

import "github.com/sdcio/pline/schema"

// Pat is a positional attribute tag: it names the kind of token
// position an expression or completion currently represents, not the
// kind of schema node involved. The renderer filters completions by a
// caller-supplied mask over this enumeration, so pat2str-equivalent
// string rendering and this set must be kept in lock-step; treat this
// type as the single source of truth for both.
type Pat int

const (
	None Pat = iota
	Container
	List
	ListKey
	ListKeyIncomplete
	Leaf
	LeafValue
	LeafEmpty
	LeafList
	LeafListValue
)

func (p Pat) String() string {
	switch p {
	case None:
		return "none"
	case Container:
		return "container"
	case List:
		return "list"
	case ListKey:
		return "list-key"
	case ListKeyIncomplete:
		return "list-key-incomplete"
	case Leaf:
		return "leaf"
	case LeafValue:
		return "leaf-value"
	case LeafEmpty:
		return "leaf-empty"
	case LeafList:
		return "leaf-list"
	case LeafListValue:
		return "leaf-list-value"
	default:
		return "unknown"
	}
}

// Expr is one addressed configuration target built up over the course
// of a parse.
type Expr struct {
	Xpath     string
	Value     string
	HasValue  bool
	Active    bool
	Pat       Pat
	ArgsNum   int
	ListPos   int
	LastKeys  string
	TreeDepth int
}

// CompletionKind distinguishes a Compl that suggests schema child names
// from one that suggests values of a leaf/leaf-list type. This is a
// closed tagged variant, matched exhaustively wherever a Compl is
// rendered - never simulated through an interface method set.
type CompletionKind int

const (
	NodeKind CompletionKind = iota
	TypeKind
)

// Compl is one completion candidate source.
type Compl struct {
	Kind      CompletionKind
	Node      schema.Node
	Xpath     string
	HasXpath  bool
	Datastore string
	Pat       Pat
}

// ParseLine is the top-level parse result: every expression addressed by
// the input, every completion candidate valid along the way, and
// whether any input token failed to match the schema.
type ParseLine struct {
	Exprs   []*Expr
	Compls  []*Compl
	Invalid bool
}

// CurrentExpr returns the last expression, creating and appending an
// empty one if none exists yet. Renderers use this to always have a
// stable expression to read xpath/pat from.
func (pl *ParseLine) CurrentExpr() *Expr {
	if len(pl.Exprs) == 0 {
		pl.Exprs = append(pl.Exprs, &Expr{})
	}
	return pl.Exprs[len(pl.Exprs)-1]
}
