package builder

import (
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/resolver"
	"github.com/specialistvlad/formdsl/internal/syntax"
	"github.com/specialistvlad/formdsl/internal/validator"
)

// pendingSection is a section whose fields have been instantiated and
// resolved but not yet validated.
type pendingSection struct {
	decl   *syntax.Section
	fields []*model.UnvalidatedField
}

// Build constructs and validates the form described by doc. The imports are
// the namespaces the import collaborator made visible to this document; they
// are searched after any set with WithImports.
func (b *Builder) Build(doc *syntax.Document, imports ...*resolver.Namespace) (*model.Form, error) {
	// Phase 1: collect and validate local declarations before anything
	// resolves against them, so a redeclared built-in is reported as such.
	local, err := b.declare(doc)
	if err != nil {
		return nil, err
	}
	if err := b.validateFieldTypes(local); err != nil {
		return nil, err
	}
	visible := append(append([]*resolver.Namespace{}, b.imports...), imports...)
	scope := resolver.NewScope(b.catalog, local, visible...)

	// Phase 2: instantiate and resolve in document order.
	sections, err := b.instantiate(doc, scope)
	if err != nil {
		return nil, err
	}

	// Phase 3: validate fields bottom-up, then the form.

	form := &model.Form{
		Name:     doc.Name,
		Sections: make([]*model.Section, 0, len(sections)),
		Source:   doc.Source,
	}
	for _, us := range sections {
		section := &model.Section{
			Name:   us.decl.Name,
			Fields: make([]*model.Field, 0, len(us.fields)),
			Source: us.decl.Source,
		}
		for _, uf := range us.fields {
			field, err := validateField(uf)
			if err != nil {
				return nil, err
			}
			section.Fields = append(section.Fields, field)
		}
		form.Sections = append(form.Sections, section)
	}

	if err := validator.Form(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (b *Builder) instantiate(doc *syntax.Document, scope *resolver.Scope) ([]pendingSection, error) {
	sections := make([]pendingSection, 0, len(doc.Sections))
	for _, sectionDecl := range doc.Sections {
		us := pendingSection{
			decl:   sectionDecl,
			fields: make([]*model.UnvalidatedField, 0, len(sectionDecl.Fields)),
		}
		for _, fieldDecl := range sectionDecl.Fields {
			uf, err := instantiateField(fieldDecl, scope)
			if err != nil {
				return nil, err
			}
			us.fields = append(us.fields, uf)
		}
		sections = append(sections, us)
	}
	return sections, nil
}

func instantiateField(decl *syntax.Field, scope *resolver.Scope) (*model.UnvalidatedField, error) {
	typeSource := decl.TypeSource
	if typeSource.IsZero() {
		typeSource = decl.Source
	}
	ft, err := scope.FieldType(decl.Type, typeSource)
	if err != nil {
		return nil, err
	}

	uf := &model.UnvalidatedField{
		Name:        decl.Name,
		Type:        ft,
		Assignments: make([]model.AttributeValue, 0, len(decl.Attributes)),
		Source:      decl.Source,
	}
	for _, avDecl := range decl.Attributes {
		attr, err := resolver.Attribute(ft, avDecl.Attribute, avDecl.Source)
		if err != nil {
			return nil, err
		}
		uf.Assignments = append(uf.Assignments, model.AttributeValue{
			Attribute: attr,
			Value:     avDecl.Value,
			Source:    avDecl.Source,
		})
	}
	return uf, nil
}

// validateField runs the attribute value rule on every assignment, then the
// field rule, which yields the validated field.
func validateField(uf *model.UnvalidatedField) (*model.Field, error) {
	for _, av := range uf.Assignments {
		if err := validator.AttributeValue(av, uf.Type); err != nil {
			return nil, err
		}
	}
	return validator.Field(uf)
}
