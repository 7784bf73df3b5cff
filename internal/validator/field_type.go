package validator

import (
	"github.com/specialistvlad/formdsl/internal/catalog"
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/semerr"
)

// FieldType checks a user-declared field type: its template path is set, its
// name does not shadow a built-in, its attribute names are unique and every
// declared default matches its attribute's type.
func FieldType(ft *model.FieldType, cat *catalog.Catalog) error {
	var errs semerr.List

	if ft.TemplatePath == "" {
		errs.Add(&semerr.Error{
			Kind:   semerr.EmptyTemplatePath,
			Name:   ft.Name,
			Source: ft.Source,
		})
	}

	if cat.Has(ft.Name) {
		errs.Add(&semerr.Error{
			Kind:   semerr.DuplicateBuiltinType,
			Name:   ft.Name,
			Source: ft.Source,
		})
	}

	seen := make(map[string]struct{}, len(ft.Attributes))
	for _, attr := range ft.Attributes {
		if _, dup := seen[attr.Name]; dup {
			errs.Add(&semerr.Error{
				Kind:   semerr.DuplicateAttributeName,
				Name:   attr.Name,
				Owner:  ft.Name,
				Source: attr.Source,
			})
			continue
		}
		seen[attr.Name] = struct{}{}
	}

	for _, attr := range ft.Attributes {
		if attr.Default == nil || attr.Type.Accepts(*attr.Default) {
			continue
		}
		errs.Add(&semerr.Error{
			Kind:     semerr.TypeMismatch,
			Name:     attr.Name,
			Owner:    ft.Name,
			Expected: attr.Type.String(),
			Actual:   attr.Default.TypeName(),
			Source:   attr.Source,
		})
	}

	return errs.First()
}
