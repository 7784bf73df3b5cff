package hcl

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// exprToValue evaluates a literal expression into a model value. Expressions
// are evaluated without variables or functions, so only literals are legal.
func exprToValue(expr hcl.Expression, src []byte) (model.Value, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return model.Value{}, diags
	}

	ty := val.Type()
	if ty.IsTupleType() || ty.IsListType() {
		// Walk the element expressions so each number keeps its own literal text.
		if items, listDiags := hcl.ExprList(expr); !listDiags.HasErrors() {
			values := make([]model.Value, 0, len(items))
			for _, item := range items {
				v, itemDiags := exprToValue(item, src)
				diags = append(diags, itemDiags...)
				if itemDiags.HasErrors() {
					return model.Value{}, diags
				}
				values = append(values, v)
			}
			return model.ListVal(values...), diags
		}
	}

	v, err := ctyToValue(val, sourceText(expr.Range(), src))
	if err != nil {
		rng := expr.Range()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   err.Error(),
			Subject:  &rng,
		})
		return model.Value{}, diags
	}
	return v, diags
}

// ctyToValue converts an evaluated cty value. literal is the source text the
// value came from and decides whether a whole number is an integer or a float.
func ctyToValue(val cty.Value, literal string) (model.Value, error) {
	if val.IsNull() {
		return model.Value{}, fmt.Errorf("null is not a valid attribute value")
	}
	if !val.IsWhollyKnown() {
		return model.Value{}, fmt.Errorf("attribute values must be known literals")
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return model.StringVal(val.AsString()), nil
	case ty.Equals(cty.Bool):
		return model.BoolVal(val.True()), nil
	case ty.Equals(cty.Number):
		return numberToValue(val.AsBigFloat(), literal)
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		values := make([]model.Value, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			v, err := ctyToValue(elem, "")
			if err != nil {
				return model.Value{}, err
			}
			values = append(values, v)
		}
		return model.ListVal(values...), nil
	default:
		return model.Value{}, fmt.Errorf("values of type %s are not supported; use a string, number, bool or list", ty.FriendlyName())
	}
}

func numberToValue(bf *big.Float, literal string) (model.Value, error) {
	if !strings.ContainsAny(literal, ".eE") && bf.IsInt() {
		n, acc := bf.Int64()
		if acc != big.Exact {
			return model.Value{}, fmt.Errorf("integer %s is out of range", bf.Text('f', -1))
		}
		return model.IntVal(n), nil
	}
	f, _ := bf.Float64()
	return model.FloatVal(f), nil
}

// sourceText returns the bytes covered by rng, or "" when rng does not lie
// within src.
func sourceText(rng hcl.Range, src []byte) string {
	start, end := rng.Start.Byte, rng.End.Byte
	if start < 0 || end > len(src) || start > end {
		return ""
	}
	return string(src[start:end])
}
