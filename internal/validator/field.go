package validator

import (
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/semerr"
)

// AttributeValue checks that an assigned value has exactly the runtime shape
// its attribute declares.
func AttributeValue(av model.AttributeValue, owner *model.FieldType) error {
	if av.Attribute.Type.Accepts(av.Value) {
		return nil
	}
	return &semerr.Error{
		Kind:     semerr.TypeMismatch,
		Name:     av.Attribute.Name,
		Owner:    owner.Name,
		Expected: av.Attribute.Type.String(),
		Actual:   av.Value.TypeName(),
		Source:   av.Source,
	}
}

// Field checks that every required attribute of the field's type is assigned
// and that no attribute is assigned twice. On success the assignments are
// collapsed into the validated Field's name to value mapping.
func Field(uf *model.UnvalidatedField) (*model.Field, error) {
	var errs semerr.List

	counts := make(map[*model.Attribute]int, len(uf.Assignments))
	for _, av := range uf.Assignments {
		counts[av.Attribute]++
	}

	for _, attr := range uf.Type.RequiredAttributes() {
		if counts[attr] == 0 {
			errs.Add(&semerr.Error{
				Kind:      semerr.MissingRequiredAttribute,
				Name:      attr.Name,
				Owner:     uf.Type.Name,
				Container: uf.Name,
				Source:    uf.Source,
			})
		}
	}

	reported := make(map[*model.Attribute]struct{})
	for _, av := range uf.Assignments {
		if counts[av.Attribute] < 2 {
			continue
		}
		if _, done := reported[av.Attribute]; done {
			continue
		}
		reported[av.Attribute] = struct{}{}
		errs.Add(&semerr.Error{
			Kind:      semerr.DuplicateAttributeAssignment,
			Name:      av.Attribute.Name,
			Owner:     uf.Type.Name,
			Container: uf.Name,
			Source:    av.Source,
		})
	}

	if err := errs.First(); err != nil {
		return nil, err
	}

	attrs := make(map[string]model.Value, len(uf.Assignments))
	for _, av := range uf.Assignments {
		attrs[av.Attribute.Name] = av.Value
	}
	return &model.Field{
		Name:       uf.Name,
		Type:       uf.Type,
		Attributes: attrs,
		Source:     uf.Source,
	}, nil
}
