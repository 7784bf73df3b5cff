// Package syntax defines the tree a parser hands to the model builder.
//
// Nodes carry names, typed literal values and containment in document order.
// Nothing here is resolved: field type and attribute references are plain
// names, and attribute types are the type names as written. Parsing concerns
// stay with whoever produces the tree; the builder only consumes it.
package syntax

import "github.com/specialistvlad/formdsl/internal/model"

// Document is one source unit. A field-type unit only declares FieldTypes;
// a form document may declare FieldTypes too and holds the Sections.
type Document struct {
	Name       string
	Imports    []string
	FieldTypes []*FieldTypeDecl
	Sections   []*Section
	Source     model.SourceInfo
}

// FieldTypeDecl declares a user-defined field type.
type FieldTypeDecl struct {
	Name         string
	TemplatePath string
	Attributes   []*AttributeDecl
	Source       model.SourceInfo
}

// AttributeDecl declares one attribute of a field type. Type is the type name
// as written, e.g. "integer" or "string[]".
type AttributeDecl struct {
	Name     string
	Required bool
	Type     string
	Default  *model.Value
	Source   model.SourceInfo
}

// Section groups fields.
type Section struct {
	Name   string
	Fields []*Field
	Source model.SourceInfo
}

// Field instantiates the field type named by Type.
type Field struct {
	Name       string
	Type       string
	TypeSource model.SourceInfo
	Attributes []*AttributeValue
	Source     model.SourceInfo
}

// AttributeValue assigns Value to the attribute named Attribute.
type AttributeValue struct {
	Attribute string
	Value     model.Value
	Source    model.SourceInfo
}
