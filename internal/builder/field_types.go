package builder

import (
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/resolver"
	"github.com/specialistvlad/formdsl/internal/semerr"
	"github.com/specialistvlad/formdsl/internal/syntax"
	"github.com/specialistvlad/formdsl/internal/validator"
)

// BuildFieldTypes builds the field types declared in a unit and validates
// them. The returned namespace can be passed to other builds as an import.
// Sections in the unit are ignored.
func (b *Builder) BuildFieldTypes(doc *syntax.Document) (*resolver.Namespace, error) {
	ns, err := b.declare(doc)
	if err != nil {
		return nil, err
	}
	if err := b.validateFieldTypes(ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// declare instantiates the document's field type declarations and collects
// them into a namespace named after the document.
func (b *Builder) declare(doc *syntax.Document) (*resolver.Namespace, error) {
	types := make([]*model.FieldType, 0, len(doc.FieldTypes))
	for _, decl := range doc.FieldTypes {
		ft, err := newFieldType(decl)
		if err != nil {
			return nil, err
		}
		types = append(types, ft)
	}
	return resolver.NewNamespace(doc.Name, types)
}

func (b *Builder) validateFieldTypes(ns *resolver.Namespace) error {
	for _, ft := range ns.Types() {
		if err := validator.FieldType(ft, b.catalog); err != nil {
			return err
		}
	}
	return nil
}

func newFieldType(decl *syntax.FieldTypeDecl) (*model.FieldType, error) {
	ft := &model.FieldType{
		Name:         decl.Name,
		TemplatePath: decl.TemplatePath,
		Attributes:   make([]*model.Attribute, 0, len(decl.Attributes)),
		Source:       decl.Source,
	}
	for _, attrDecl := range decl.Attributes {
		typ, err := model.ParseAttrType(attrDecl.Type)
		if err != nil {
			return nil, &semerr.Error{
				Kind:   semerr.UnknownAttributeType,
				Name:   attrDecl.Name,
				Owner:  decl.Name,
				Actual: attrDecl.Type,
				Source: attrDecl.Source,
			}
		}

		attr := &model.Attribute{
			Name:     attrDecl.Name,
			Required: attrDecl.Required,
			Type:     typ,
			Source:   attrDecl.Source,
		}
		if attrDecl.Default != nil {
			def := *attrDecl.Default
			attr.Default = &def
		}
		ft.Attributes = append(ft.Attributes, attr)
	}
	return ft, nil
}
