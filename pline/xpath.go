// SPDX-License-Identifier: MPL-2.0

package pline

import "strings"

// AppendStep appends "/{prefix}:{name}" to expr's xpath, counts it as a
// consumed argument and marks the expression active - it now addresses
// something (spec.md 4.B).
func AppendStep(expr *Expr, prefix, name string) {
	expr.Xpath += "/" + prefix + ":" + name
	expr.ArgsNum++
	expr.Active = true
}

// AppendListKey appends a `[key="escaped-value"]` predicate to expr's
// xpath and to LastKeys, C-escaping value the way a list key predicate
// in an existing-data query must be escaped. countsAsArg controls
// whether the predicate counts as a consumed argument: an
// extension-default key filled in without a matching input token does
// not (spec.md 4.C.2, named mode).
func AppendListKey(expr *Expr, key, value string, countsAsArg bool) {
	predicate := "[" + key + `="` + cEscape(value) + `"]`
	expr.Xpath += predicate
	expr.LastKeys += predicate
	if countsAsArg {
		expr.ArgsNum++
	}
}

// AppendLeaflistValue appends a `[.='prefix:value']` predicate
// identifying one leaf-list entry; prefix is empty when the value
// carries no identity-module qualification.
func AppendLeaflistValue(expr *Expr, prefix, value string) {
	var predicate string
	if prefix != "" {
		predicate = "[.='" + prefix + ":" + value + "']"
	} else {
		predicate = "[.='" + value + "']"
	}
	expr.Xpath += predicate
	expr.LastKeys += value
	expr.ArgsNum++
}

// cEscape applies C-style backslash escaping to the characters that
// would otherwise break out of a double-quoted XPath predicate literal,
// mirroring the source's faux_str_c_esc.
func cEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
