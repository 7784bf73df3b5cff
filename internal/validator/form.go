package validator

import (
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/semerr"
)

// Form checks that field names are unique across all sections of the form.
func Form(form *model.Form) error {
	var errs semerr.List
	seen := make(map[string]struct{})
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			if _, dup := seen[field.Name]; dup {
				errs.Add(&semerr.Error{
					Kind:      semerr.DuplicateFieldName,
					Name:      field.Name,
					Container: form.Name,
					Source:    field.Source,
				})
				continue
			}
			seen[field.Name] = struct{}{}
		}
	}
	return errs.First()
}
