// SPDX-License-Identifier: MPL-2.0

package complete

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdcio/pline/schema"
)

// printTypeHelp prints a type descriptor: numeric/string ranges,
// "<true/false>" for booleans, enum or derived identity names (each
// followed by the name again as its help line), union members recursed,
// and a leafref's target type recursed. Only a leafref without a
// resolved target type, or an unrecognized type kind (after
// "<unknown>"), prints the node's own description line. Output is
// written in one pass, the way pline_print_type_help builds it, rather
// than returned as a structure the caller formats later.
func printTypeHelp(w io.Writer, node schema.Node, typ schema.Type) error {
	switch t := typ.(type) {

	case *schema.Uinteger:
		return printURanges(w, t.Ranges)

	case *schema.Integer:
		return printRanges(w, t.Ranges)

	case *schema.Decimal64:
		return printDecRanges(w, t.Ranges, t.FractionDigits)

	case *schema.StringType:
		return printStringLengths(w, t.Lengths)

	case *schema.Boolean:
		_, err := fmt.Fprintln(w, "<true/false>")
		return err

	case *schema.Leafref:
		if t.RealType != nil {
			return printTypeHelp(w, node, t.RealType)
		}
		return descriptionLine(w, node)

	case *schema.Union:
		for _, m := range t.Members {
			if err := printTypeHelp(w, node, m); err != nil {
				return err
			}
		}
		return nil

	case *schema.Enumeration:
		for _, e := range t.Enums {
			if _, err := fmt.Fprintf(w, "%s\n%s\n", e.Name, e.Name); err != nil {
				return err
			}
		}
		return nil

	case *schema.Identityref:
		if t.Base != nil {
			return identityHelp(w, t.Base)
		}
		return nil

	default:
		_, err := fmt.Fprintln(w, "<unknown>")
		if err != nil {
			return err
		}
	}

	return descriptionLine(w, node)
}

func descriptionLine(w io.Writer, node schema.Node) error {
	if node == nil {
		return nil
	}
	line := firstLine(node.Description())
	if line == "" {
		line = node.Name()
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func identityHelp(w io.Writer, id *schema.Identity) error {
	if len(id.Derived) == 0 {
		desc := firstLine("")
		_ = desc
		line := id.Name
		_, err := fmt.Fprintf(w, "%s\n%s\n", id.Name, line)
		return err
	}
	for _, d := range id.Derived {
		if err := identityHelp(w, d); err != nil {
			return err
		}
	}
	return nil
}

// printTypeValues prints the type's literal value set - the completion
// mode counterpart to printTypeHelp (spec.md 4.D, "print the type's
// literal value set").
func printTypeValues(w io.Writer, typ schema.Type) error {
	switch t := typ.(type) {

	case *schema.Boolean:
		_, err := fmt.Fprintln(w, "true\nfalse")
		return err

	case *schema.Enumeration:
		for _, e := range t.Enums {
			if _, err := fmt.Fprintln(w, e.Name); err != nil {
				return err
			}
		}
		return nil

	case *schema.Identityref:
		if t.Base != nil {
			return identityValues(w, t.Base)
		}
		return nil

	case *schema.Union:
		for _, m := range t.Members {
			if err := printTypeValues(w, m); err != nil {
				return err
			}
		}
		return nil

	case *schema.Leafref:
		if t.RealType != nil {
			return printTypeValues(w, t.RealType)
		}
		return nil

	default:
		return nil
	}
}

func identityValues(w io.Writer, id *schema.Identity) error {
	if len(id.Derived) == 0 {
		_, err := fmt.Fprintln(w, id.Name)
		return err
	}
	for _, d := range id.Derived {
		if err := identityValues(w, d); err != nil {
			return err
		}
	}
	return nil
}

func printURanges(w io.Writer, ranges []schema.URange) error {
	if len(ranges) == 0 {
		_, err := fmt.Fprintln(w, "[0..unbounded]")
		return err
	}
	_, err := fmt.Fprintln(w, "["+joinURanges(ranges)+"]")
	return err
}

func joinURanges(ranges []schema.URange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, "|")
}

func printRanges(w io.Writer, ranges []schema.Range) error {
	if len(ranges) == 0 {
		_, err := fmt.Fprintln(w, "[unbounded]")
		return err
	}
	_, err := fmt.Fprintln(w, "["+joinRanges(ranges)+"]")
	return err
}

func joinRanges(ranges []schema.Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, "|")
}

func printDecRanges(w io.Writer, ranges []schema.Range, fractionDigits int) error {
	if len(ranges) == 0 {
		_, err := fmt.Fprintln(w, "[unbounded]")
		return err
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = decimalString(r.Min, fractionDigits) + ".." + decimalString(r.Max, fractionDigits)
	}
	_, err := fmt.Fprintln(w, "["+strings.Join(parts, "|")+"]")
	return err
}

func decimalString(v int64, fractionDigits int) string {
	div := int64(1)
	for i := 0; i < fractionDigits; i++ {
		div *= 10
	}
	whole := v / div
	frac := v % div
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%0*d", whole, fractionDigits, frac)
}

func printStringLengths(w io.Writer, lengths []schema.URange) error {
	if len(lengths) == 0 {
		_, err := fmt.Fprintln(w, "<string>")
		return err
	}
	_, err := fmt.Fprintln(w, "<string["+joinURanges(lengths)+"]>")
	return err
}
