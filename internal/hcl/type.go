package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// typeExprToName turns an attribute type expression into a type name the
// model understands. Three spellings are accepted:
//
//	type = integer
//	type = list(string)
//	type = "string[]"
//
// The name itself is not checked here; unknown kinds are reported by the
// builder.
func typeExprToName(expr hcl.Expression) (string, hcl.Diagnostics) {
	if kw := hcl.ExprAsKeyword(expr); kw != "" {
		return kw, nil
	}

	if call, diags := hcl.ExprCall(expr); !diags.HasErrors() {
		if call.Name != "list" {
			return "", invalidType(expr, fmt.Sprintf("The type constructor %q is not supported; only list(kind) is.", call.Name))
		}
		if len(call.Arguments) != 1 {
			return "", invalidType(expr, "The list type constructor requires exactly one argument.")
		}
		inner := hcl.ExprAsKeyword(call.Arguments[0])
		if inner == "" {
			return "", invalidType(expr, "Lists hold a single kind keyword, e.g. list(string). Nested lists are not supported.")
		}
		return fmt.Sprintf("list(%s)", inner), nil
	}

	var name string
	if diags := gohcl.DecodeExpression(expr, nil, &name); diags.HasErrors() {
		return "", invalidType(expr, "Expected a kind keyword (string, integer, float, boolean), list(kind), or a quoted type name.")
	}
	return name, nil
}

func invalidType(expr hcl.Expression, detail string) hcl.Diagnostics {
	rng := expr.Range()
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid type specification",
		Detail:   detail,
		Subject:  &rng,
	}}
}
