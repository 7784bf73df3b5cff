// Package hcl reads form documents written in HCL and hands them to the model
// builder. It is the parsing and import-resolution collaborator of the core:
// it turns source text into syntax trees, evaluates literal expressions into
// typed values with cty, and resolves import paths on disk into namespaces of
// validated field types.
//
// A field-type unit declares reusable types:
//
//	field_type "Rating" {
//	  template = "templates/rating.html"
//
//	  attribute "max" {
//	    type     = integer
//	    required = true
//	  }
//	  attribute "tags" {
//	    type    = list(string)
//	    default = []
//	  }
//	}
//
// A form document imports units and instantiates fields in sections:
//
//	imports = ["types.hcl"]
//
//	section "Feedback" {
//	  field "Rating" "score" {
//	    max = 5
//	  }
//	}
//
// A form document may also declare field types of its own.
package hcl
