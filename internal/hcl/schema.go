package hcl

import "github.com/hashicorp/hcl/v2"

// documentSchema is the top level of every file.
var documentSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "imports"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "field_type", LabelNames: []string{"name"}},
		{Type: "section", LabelNames: []string{"name"}},
	},
}

// fieldTypeSchema is the body of a `field_type` block. The template is
// optional here so that a missing one is reported as a semantic error.
var fieldTypeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "template"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "attribute", LabelNames: []string{"name"}},
	},
}

// attributeSchema is the body of an `attribute` block.
var attributeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "required"},
		{Name: "default"},
	},
}

// sectionSchema is the body of a `section` block.
var sectionSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "field", LabelNames: []string{"type", "name"}},
	},
}
