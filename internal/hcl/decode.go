package hcl

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/syntax"
)

// decodeDocument converts a parsed HCL file into a syntax tree. src is the
// file's raw bytes, used to tell integer literals from float literals.
func decodeDocument(file *hcl.File, filename string, src []byte) (*syntax.Document, hcl.Diagnostics) {
	content, diags := file.Body.Content(documentSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	doc := &syntax.Document{
		Name:   documentName(filename),
		Source: model.SourceInfo{File: filename},
	}

	if attr, ok := content.Attributes["imports"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &doc.Imports)...)
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "field_type":
			decl, declDiags := decodeFieldType(block, src)
			diags = append(diags, declDiags...)
			if decl != nil {
				doc.FieldTypes = append(doc.FieldTypes, decl)
			}
		case "section":
			section, sectionDiags := decodeSection(block, src)
			diags = append(diags, sectionDiags...)
			if section != nil {
				doc.Sections = append(doc.Sections, section)
			}
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return doc, diags
}

func decodeFieldType(block *hcl.Block, src []byte) (*syntax.FieldTypeDecl, hcl.Diagnostics) {
	content, diags := block.Body.Content(fieldTypeSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	decl := &syntax.FieldTypeDecl{
		Name:   block.Labels[0],
		Source: sourceInfo(block.DefRange),
	}
	if attr, ok := content.Attributes["template"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &decl.TemplatePath)...)
	}

	for _, attrBlock := range content.Blocks {
		attrDecl, attrDiags := decodeAttributeDecl(attrBlock, src)
		diags = append(diags, attrDiags...)
		if attrDecl != nil {
			decl.Attributes = append(decl.Attributes, attrDecl)
		}
	}
	return decl, diags
}

func decodeAttributeDecl(block *hcl.Block, src []byte) (*syntax.AttributeDecl, hcl.Diagnostics) {
	content, diags := block.Body.Content(attributeSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	decl := &syntax.AttributeDecl{
		Name:   block.Labels[0],
		Source: sourceInfo(block.DefRange),
	}

	typeName, typeDiags := typeExprToName(content.Attributes["type"].Expr)
	diags = append(diags, typeDiags...)
	decl.Type = typeName

	if attr, ok := content.Attributes["required"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &decl.Required)...)
	}
	if attr, ok := content.Attributes["default"]; ok {
		v, valueDiags := exprToValue(attr.Expr, src)
		diags = append(diags, valueDiags...)
		if !valueDiags.HasErrors() {
			decl.Default = &v
		}
	}
	return decl, diags
}

func decodeSection(block *hcl.Block, src []byte) (*syntax.Section, hcl.Diagnostics) {
	content, diags := block.Body.Content(sectionSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	section := &syntax.Section{
		Name:   block.Labels[0],
		Source: sourceInfo(block.DefRange),
	}
	for _, fieldBlock := range content.Blocks {
		field, fieldDiags := decodeField(fieldBlock, src)
		diags = append(diags, fieldDiags...)
		if field != nil {
			section.Fields = append(section.Fields, field)
		}
	}
	return section, diags
}

// decodeField reads a `field "Type" "name"` block. Every attribute in its body
// is an assignment; they are kept in source order.
func decodeField(block *hcl.Block, src []byte) (*syntax.Field, hcl.Diagnostics) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	field := &syntax.Field{
		Type:   block.Labels[0],
		Name:   block.Labels[1],
		Source: sourceInfo(block.DefRange),
	}
	if len(block.LabelRanges) > 0 {
		field.TypeSource = sourceInfo(block.LabelRanges[0])
	}

	for _, attr := range sortedAttributes(attrs) {
		v, valueDiags := exprToValue(attr.Expr, src)
		diags = append(diags, valueDiags...)
		if valueDiags.HasErrors() {
			continue
		}
		field.Attributes = append(field.Attributes, &syntax.AttributeValue{
			Attribute: attr.Name,
			Value:     v,
			Source:    sourceInfo(attr.NameRange),
		})
	}
	return field, diags
}

// sortedAttributes returns the attributes in the order they appear in the file.
func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Range.Start.Byte < out[j].Range.Start.Byte
	})
	return out
}

func sourceInfo(r hcl.Range) model.SourceInfo {
	return model.SourceInfo{File: r.Filename, Line: r.Start.Line, Column: r.Start.Column}
}

// documentName is the file name without directory and extension.
func documentName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
