// SPDX-License-Identifier: MPL-2.0

package pline

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/sdcio/pline/adapter"
	"github.com/sdcio/pline/datastore"
	"github.com/sdcio/pline/schema"
)

// SchemaProvider is the scoped acquisition boundary around the compiled
// module list a parse walks. Modeling it this way keeps the borrow/
// release discipline spec.md 5 requires (acquire_context/
// release_context) explicit and guarantees release on every exit path
// via defer in Parse, rather than leaving it to caller discipline.
type SchemaProvider interface {
	AcquireModules(ctx context.Context) ([]*schema.Module, error)
	ReleaseModules()
}

// ErrNoModules is returned when a SchemaProvider yields zero modules;
// this is an allocation/schema-access class failure (spec.md 7), not a
// parse-invalid result.
var ErrNoModules = errors.New("pline: no schema modules available")

// argIter walks argv one token at a time without mutating the backing
// slice, so a fresh iterator can be cheaply created per module attempt.
type argIter struct {
	argv []string
	pos  int
}

func newArgIter(argv []string) *argIter { return &argIter{argv: argv} }

func (a *argIter) current() (string, bool) {
	if a.pos >= len(a.argv) {
		return "", false
	}
	return a.argv[a.pos], true
}

func (a *argIter) advance() { a.pos++ }

// rollbackMemo is the xpath prefix and cursor counters saved just
// before a leaf or leaf-list's own step is appended; it seeds the next
// expression once that leaf/leaf-list completes (spec.md 4.C.2).
type rollbackMemo struct {
	xpath     string
	argsNum   int
	listPos   int
	treeDepth int
	valid     bool
}

// Parse runs the schema-directed parser over argv against every module
// sp yields, per spec.md 4.C.1: internal and non-contributing modules
// are skipped, and the first module whose attempt finds a root match
// wins. Completions accumulate across every attempted module, found or
// not, since a failed module can still have produced valid root-level
// completions.
func Parse(ctx context.Context, sp SchemaProvider, argv []string, opts *Opts) (*ParseLine, error) {
	modules, err := sp.AcquireModules(ctx)
	if err != nil {
		return nil, err
	}
	defer sp.ReleaseModules()

	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	pl := &ParseLine{}

	for _, module := range modules {
		if adapter.ModuleIsInternal(module, opts.EnableNACM) {
			continue
		}
		if !module.Implemented || !module.Compiled || !module.HasData() {
			continue
		}
		if parseModule(module, argv, pl, opts) {
			log.Debugf("pline: matched module %s", module.Name)
			break
		}
	}

	if len(pl.Exprs) > 0 {
		last := pl.Exprs[len(pl.Exprs)-1]
		if !last.Active {
			pl.Exprs = pl.Exprs[:len(pl.Exprs)-1]
		}
	}

	return pl, nil
}

// parseModule attempts to match argv against a single module's schema
// tree, appending to pl's expressions and completions as it goes.
// It returns true iff the first expression it produced ended up with a
// non-empty xpath - the module "found" a root match.
func parseModule(module *schema.Module, argv []string, pl *ParseLine, opts *Opts) bool {
	arg := newArgIter(argv)
	var node schema.Node
	var rollbackTo rollbackMemo
	rollback := false

	// Reset: a prior module attempt against this same pl may have left
	// this set, but pl is only really invalid once every module has
	// rejected the input.
	pl.Invalid = false

loop:
	for {
		expr := pl.CurrentExpr()
		str, hasStr := arg.current()
		isRollback := rollback
		nextArg := true
		rollback = false

		if node != nil && !isRollback {
			switch node.(type) {
			case *schema.Leaf, *schema.LeafList:
				rollbackTo = rollbackMemo{
					xpath:     expr.Xpath,
					argsNum:   expr.ArgsNum,
					listPos:   expr.ListPos,
					treeDepth: expr.TreeDepth,
					valid:     true,
				}
			}
			if schema.IsTransparent(node) {
				// Choice and case have no XPath presence: the token
				// naming them is consumed without adding a step.
				expr.ArgsNum++
			} else {
				AppendStep(expr, node.Module(), node.Name())
			}
		}

		switch n := node.(type) {

		case nil:
			if !hasStr {
				addComplSubtree(pl, module.Root, expr.Xpath)
				break loop
			}
			node = adapter.FindChild(module.Root, str)
			if node == nil {
				break loop
			}

		case *schema.Container:
			expr.Pat = Container
			expr.TreeDepth++
			if !hasStr {
				addComplSubtree(pl, n.Children(), expr.Xpath)
				break loop
			}
			node = adapter.FindChild(n.Children(), str)

		case *schema.List:
			expr.Pat = List
			expr.ListPos = expr.ArgsNum
			expr.LastKeys = ""

			if !isRollback {
				complete, ok := consumeListKeys(n, arg, expr, pl, opts)
				if complete || !ok {
					break loop
				}
				str, hasStr = arg.current()
			}

			expr.TreeDepth++
			if !hasStr {
				addComplSubtree(pl, n.Children(), expr.Xpath)
				break loop
			}
			node = adapter.FindChild(n.Children(), str)

		case *schema.Leaf:
			typ := n.Type()
			if _, isEmpty := typ.(*schema.Empty); isEmpty {
				expr.Pat = LeafEmpty
				if !hasStr {
					parent := n.Parent()
					var siblings []schema.Node
					if parent != nil {
						siblings = parent.Children()
					}
					addComplSubtree(pl, siblings, expr.Xpath)
					break loop
				}
				nextArg = false
			} else {
				expr.Pat = Leaf
				if !hasStr {
					addComplLeaf(pl, n, expr.Xpath, LeafValue)
					break loop
				}
				expr.Pat = LeafValue
				if idref, ok := typ.(*schema.Identityref); ok && idref.Base != nil {
					if mod := adapter.IdentityPrefix([]*schema.Identity{idref.Base}, str); mod != "" {
						expr.Value += mod + ":"
					}
				}
				expr.Value += str
				expr.HasValue = true
			}
			node = n.Parent()
			pl.Exprs = append(pl.Exprs, newExprFromMemo(rollbackTo))
			rollback = true

		case *schema.LeafList:
			expr.Pat = LeafList
			expr.ListPos = expr.ArgsNum
			expr.LastKeys = ""

			if !hasStr {
				addComplLeaf(pl, n, expr.Xpath, LeafListValue)
				break loop
			}
			expr.Pat = LeafListValue

			prefix := ""
			if idref, ok := n.Type().(*schema.Identityref); ok && idref.Base != nil {
				prefix = adapter.IdentityPrefix([]*schema.Identity{idref.Base}, str)
			}
			AppendLeaflistValue(expr, prefix, str)

			node = n.Parent()
			pl.Exprs = append(pl.Exprs, newExprFromMemo(rollbackTo))
			rollback = true

		case *schema.Choice:
			if !hasStr {
				addComplSubtree(pl, n.Children(), expr.Xpath)
				break loop
			}
			node = adapter.FindChild(n.Children(), str)

		case *schema.Case:
			if !hasStr {
				addComplSubtree(pl, n.Children(), expr.Xpath)
				break loop
			}
			node = adapter.FindChild(n.Children(), str)

		default:
			break loop
		}

		if node == nil && !rollback {
			break
		}
		if nextArg {
			arg.advance()
		}
	}

	if _, hasStr := arg.current(); hasStr {
		pl.Invalid = true
	}

	return moduleFound(pl)
}

func moduleFound(pl *ParseLine) bool {
	if len(pl.Exprs) == 0 {
		return false
	}
	return pl.Exprs[0].Xpath != ""
}

func newExprFromMemo(m rollbackMemo) *Expr {
	e := &Expr{}
	if m.valid {
		e.Xpath = m.xpath
		e.ArgsNum = m.argsNum
		e.ListPos = m.listPos
		e.TreeDepth = m.treeDepth
	}
	return e
}

// consumeListKeys handles list-key consumption in whichever mode opts
// selects. It returns (complete, ok): complete is true when a key-value
// completion was emitted and the caller should stop; ok is false when a
// mandatory key was left unspecified and parsing of this module must
// stop. Completions for keys left unspecified at the end of input are
// emitted with complete still false.
func consumeListKeys(n *schema.List, arg *argIter, expr *Expr, pl *ParseLine, opts *Opts) (complete bool, ok bool) {
	if !opts.KeysWithStatement {
		return consumeListKeysPositional(n, arg, expr, pl)
	}
	return consumeListKeysNamed(n, arg, expr, pl, opts)
}

func consumeListKeysPositional(n *schema.List, arg *argIter, expr *Expr, pl *ParseLine) (complete bool, ok bool) {
	for _, key := range n.Keys() {
		str, hasStr := arg.current()
		if !hasStr {
			addComplLeaf(pl, key, expr.Xpath+"/"+key.Name(), ListKey)
			return true, true
		}
		AppendListKey(expr, key.Name(), str, true)
		arg.advance()
		expr.Pat = ListKey
	}
	return false, true
}

type namedKey struct {
	leaf    *schema.Leaf
	dflt    string
	hasDflt bool
	value   string
	hasVal  bool
}

func consumeListKeysNamed(n *schema.List, arg *argIter, expr *Expr, pl *ParseLine, opts *Opts) (complete bool, ok bool) {
	keys := make([]*namedKey, 0, len(n.Keys()))
	firstKeyIsOptional := false
	for i, leaf := range n.Keys() {
		nk := &namedKey{leaf: leaf}
		if opts.DefaultKeys {
			if def, has := leaf.ExtDefault(); has {
				nk.dflt = def
				nk.hasDflt = true
				if i == 0 {
					firstKeyIsOptional = true
				}
			}
		}
		keys = append(keys, nk)
	}

	specified := 0
	for specified < len(keys) {
		var cur *namedKey
		str, hasStr := arg.current()

		if specified == 0 && !opts.FirstKeyWithStatement && !firstKeyIsOptional {
			cur = keys[0]
		} else {
			if !hasStr {
				break
			}
			cur = findNamedKey(keys, str)
			if cur == nil || cur.hasVal {
				break
			}
			expr.ArgsNum++
			arg.advance()
			expr.Pat = ListKeyIncomplete
			str, hasStr = arg.current()
		}

		if !hasStr {
			addComplLeaf(pl, cur.leaf, expr.Xpath+"/"+cur.leaf.Name(), ListKey)
			return true, true
		}

		AppendListKey(expr, cur.leaf.Name(), str, true)
		cur.value = str
		cur.hasVal = true
		specified++
		arg.advance()
		expr.Pat = ListKey
	}

	xpathBeforeDefaults := expr.Xpath
	missingMandatory := false
	for _, cur := range keys {
		if cur.hasVal {
			continue
		}
		_, hasStr := arg.current()
		if !hasStr {
			addCompl(pl, NodeKind, cur.leaf, xpathBeforeDefaults+"/"+cur.leaf.Name(), "", ListKeyIncomplete)
		}
		if opts.DefaultKeys && cur.hasDflt {
			AppendListKey(expr, cur.leaf.Name(), cur.dflt, false)
			expr.Pat = ListKey
		} else {
			missingMandatory = true
		}
	}

	return false, !missingMandatory
}

func findNamedKey(keys []*namedKey, name string) *namedKey {
	for _, k := range keys {
		if k.leaf.Name() == name {
			return k
		}
	}
	return nil
}

// addComplSubtree enumerates writable, non-key children of nodes,
// recursing transparently through choice/case, and emits one Node-kind
// completion per surfaced child (spec.md 4.C.4).
func addComplSubtree(pl *ParseLine, nodes []schema.Node, xpath string) {
	for _, n := range nodes {
		if !n.Config() {
			continue
		}
		if leaf, ok := n.(*schema.Leaf); ok && leaf.IsKey() {
			continue
		}
		if schema.IsTransparent(n) {
			addComplSubtree(pl, n.Children(), xpath)
			continue
		}

		var pat Pat
		switch n.(type) {
		case *schema.Container:
			pat = Container
		case *schema.Leaf:
			pat = Leaf
		case *schema.LeafList:
			pat = LeafList
		case *schema.List:
			pat = List
		default:
			continue
		}

		nodeXpath := xpath + "/" + n.Module() + ":" + n.Name()
		addCompl(pl, NodeKind, n, nodeXpath, "", pat)
	}
}

// addComplLeaf emits the up-to-three completion records a leaf or
// leaf-list value position can produce (spec.md 4.C.4): an extension
// existing-data query, the node/type itself, and one leafref-target
// query per leafref reachable by recursing into type unions.
func addComplLeaf(pl *ParseLine, n schema.Node, xpath string, pat Pat) {
	var typ schema.Type
	switch v := n.(type) {
	case *schema.Leaf:
		typ = v.Type()
	case *schema.LeafList:
		typ = v.Type()
	default:
		return
	}

	if extXpath := adapter.NodeExtCompletion(n); extXpath != "" {
		ds, rawXpath := splitExtXpath(extXpath)
		addCompl(pl, TypeKind, nil, rawXpath, ds, pat)
	}

	addCompl(pl, TypeKind, n, xpath, "", pat)

	addComplLeafref(pl, n, typ, xpath, pat)
}

func addComplLeafref(pl *ParseLine, n schema.Node, typ schema.Type, xpath string, pat Pat) {
	if typ == nil {
		return
	}
	switch t := typ.(type) {
	case *schema.Union:
		for _, m := range t.Members {
			addComplLeafref(pl, n, m, xpath, pat)
		}
	case *schema.Leafref:
		target := adapter.LeafrefTargetXPath(t, xpath)
		addCompl(pl, TypeKind, nil, target, "", pat)
	}
}

// splitExtXpath parses an extension completion string of the form
// "<datastore>:<xpath>" into its datastore name and raw xpath. An
// unrecognized leading token is treated as part of the xpath itself,
// with an empty datastore name (the caller's default).
func splitExtXpath(s string) (ds string, xpath string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			if _, ok := datastore.ParseDatastore(s[:i]); ok {
				return s[:i], s[i+1:]
			}
			break
		}
	}
	return "", s
}

func addCompl(pl *ParseLine, kind CompletionKind, n schema.Node, xpath, ds string, pat Pat) {
	c := &Compl{Kind: kind, Node: n, Pat: pat, Datastore: ds}
	if xpath != "" {
		c.Xpath = xpath
		c.HasXpath = true
	}
	pl.Compls = append(pl.Compls, c)
}
