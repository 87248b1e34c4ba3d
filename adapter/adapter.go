// SPDX-License-Identifier: MPL-2.0

// Package adapter implements the Schema Adapter (spec.md 4.A): the small
// set of lookups the parser core needs from a compiled schema tree,
// isolated so the parser itself never type-switches on concrete node
// kinds for anything but dispatch.
package adapter

import (
	"strings"

	"github.com/sdcio/pline/schema"
)

// FindChild searches children for a configuration node named name,
// skipping anything that is not write-config (spec.md: "skips ...
// non-configuration nodes ... and nodes without write-config flag").
// It does not filter by owning module, so augmented children - which
// carry the augmenting module's own prefix - are found exactly like
// native ones.
func FindChild(children []schema.Node, name string) schema.Node {
	for _, c := range children {
		if !c.Config() {
			continue
		}
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// IdentityPrefix recursively walks the derivation graph of each base
// identity, returning the module name of the first identity whose own
// name equals name. It returns "" if no identity in any derivation graph
// matches.
func IdentityPrefix(bases []*schema.Identity, name string) string {
	for _, base := range bases {
		if mod, ok := searchIdentity(base, name); ok {
			return mod
		}
	}
	return ""
}

func searchIdentity(id *schema.Identity, name string) (string, bool) {
	if id.Name == name {
		return id.Module, true
	}
	for _, d := range id.Derived {
		if mod, ok := searchIdentity(d, name); ok {
			return mod, true
		}
	}
	return "", false
}

// LeafrefTargetXPath resolves a leafref's path statement to an absolute,
// module-prefixed XPath, relative to currentXPath when the statement is
// relative ("../..."). This is grounded on (but does not reuse verbatim)
// the teacher's xutils.GetAbsPath: that helper strips module prefixes
// entirely, which would violate the requirement that every active
// expression's xpath carry a prefix on every step (spec.md 8, invariant
// 1) - so here the prefix-bearing steps of currentXPath are kept, only
// the trailing steps peeled off by "../" segments are dropped.
func LeafrefTargetXPath(lr *schema.Leafref, currentXPath string) string {
	path := lr.Path
	if !strings.HasPrefix(path, "../") && !strings.HasPrefix(path, "/") {
		// Not a recognized leafref path shape; return as-is for the
		// caller to treat as an opaque (already-absolute) string.
		return path
	}
	if strings.HasPrefix(path, "/") {
		return path
	}

	upCount := 0
	rest := path
	for strings.HasPrefix(rest, "../") {
		upCount++
		rest = rest[len("../"):]
	}

	steps := splitXPathSteps(currentXPath)
	// currentXPath's final step is the leaf itself, so the first "../"
	// drops the leaf's own step and leaves its parent as the context.
	drop := upCount
	if drop > len(steps) {
		drop = len(steps)
	}
	base := steps[:len(steps)-drop]

	var b strings.Builder
	for _, s := range base {
		b.WriteString("/")
		b.WriteString(s)
	}
	for _, s := range strings.Split(rest, "/") {
		if s == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(s)
	}
	return b.String()
}

// splitXPathSteps splits an absolute XPath of the form
// "/mod:a/mod:b[key=\"v\"]/mod:c" into its per-step strings, each
// including its own predicates but not the leading slash.
func splitXPathSteps(xpath string) []string {
	if xpath == "" {
		return nil
	}
	trimmed := strings.TrimPrefix(xpath, "/")
	if trimmed == "" {
		return nil
	}
	var steps []string
	depth := 0
	start := 0
	for i, r := range trimmed {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '/':
			if depth == 0 {
				steps = append(steps, trimmed[start:i])
				start = i + 1
			}
		}
	}
	steps = append(steps, trimmed[start:])
	return steps
}

// NodeExtCompletion returns the extension-provided completion query
// string carried by n, or "" if it has none.
func NodeExtCompletion(n schema.Node) string {
	return n.ExtCompletion()
}

// NodeExtDefault returns the extension-provided default value for a
// list-key leaf, or ("", false) if it carries none.
func NodeExtDefault(leaf *schema.Leaf) (string, bool) {
	return leaf.ExtDefault()
}

// internalModule identifies one (name, revision) pair hidden from parsing
// by default, ported from sr_module_is_internal in the original
// implementation (original_source/src/pline.c). Revision "" matches any
// revision of that module name (mirrors ietf-yang-schema-mount /
// ietf-yang-library / ietf-netconf, which the source checks by name
// alone).
type internalModule struct {
	name     string
	revision string
}

var internalModules = []internalModule{
	{"ietf-yang-metadata", "2016-08-05"},
	{"yang", "2021-04-07"},
	{"ietf-inet-types", "2013-07-15"},
	{"ietf-yang-types", "2013-07-15"},
	{"ietf-datastores", "2018-02-14"},
	{"ietf-yang-schema-mount", ""},
	{"ietf-yang-library", ""},
	{"ietf-netconf", ""},
	{"ietf-netconf-with-defaults", "2011-06-01"},
	{"ietf-origin", "2018-02-14"},
	{"ietf-netconf-notifications", "2012-02-06"},
	{"iana-if-type", ""},
	{"sysrepo", ""},
	{"sysrepo-monitoring", ""},
	{"sysrepo-plugind", ""},
}

const nacmModule = "ietf-netconf-acm"

// ModuleIsInternal reports whether module is hidden from the parser's
// module-selection loop (spec.md 4.C.1). The NACM module is hidden only
// when enableNACM is false.
func ModuleIsInternal(module *schema.Module, enableNACM bool) bool {
	if module.Revision == "" {
		// The source bails out ("no revision, not internal") before
		// even checking NACM; a module without a revision statement
		// cannot be one of the fixed, revision-pinned entries below.
		return false
	}

	for _, m := range internalModules {
		if m.name != module.Name {
			continue
		}
		if m.revision == "" || m.revision == module.Revision {
			return true
		}
	}

	if module.Name == nacmModule && !enableNACM {
		return true
	}

	return false
}
