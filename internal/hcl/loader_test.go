package hcl

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/formdsl/internal/catalog"
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/semerr"
	"github.com/specialistvlad/formdsl/internal/testutil"
	"github.com/stretchr/testify/require"
)

const ratingTypes = `
	field_type "Rating" {
	  template = "templates/rating.html"

	  attribute "max" {
	    type     = integer
	    required = true
	  }
	  attribute "step" {
	    type    = float
	    default = 0.5
	  }
	  attribute "labels" {
	    type    = list(string)
	    default = []
	  }
	}
`

const surveyForm = `
	imports = ["types.hcl"]

	section "Contact" {
	  field "TextField" "email" {
	    multiline   = false
	    placeholder = "you@example.com"
	  }
	  field "DateField" "born" {}
	}

	section "Feedback" {
	  field "Rating" "score" {
	    max  = 5
	    step = 1.0
	  }
	  field "ChoiceField" "colour" {
	    choices  = ["red", "green"]
	    multiple = true
	  }
	}
`

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"types.hcl":  ratingTypes,
		"survey.hcl": surveyForm,
	})
	ctx, logs := testutil.LoggerContext(t)

	res, err := NewLoader(nil).Load(ctx, filepath.Join(root, "survey.hcl"))
	require.NoError(t, err)

	form := res.Form
	require.Equal(t, "survey", form.Name)
	require.Len(t, form.Sections, 2)
	require.Len(t, form.Fields(), 4)
	require.Len(t, res.Imports, 1)
	require.Equal(t, []string{filepath.Join(root, "survey.hcl"), filepath.Join(root, "types.hcl")}, res.Files)

	score, ok := form.Field("score")
	require.True(t, ok)
	require.Equal(t, "templates/rating.html", score.TemplatePath())
	require.True(t, model.IntVal(5).Equal(score.Attributes["max"]))
	require.True(t, model.FloatVal(1).Equal(score.Attributes["step"]), "1.0 must stay a float")

	labels, ok := score.Lookup("labels")
	require.True(t, ok)
	require.Equal(t, 0, labels.Len())

	email, _ := form.Field("email")
	require.Equal(t, catalog.TextField, email.Type.Name)
	require.Equal(t, filepath.Join(root, "survey.hcl"), email.Source.File)
	require.Equal(t, 4, email.Source.Line)

	require.Contains(t, logs.String(), "Form loaded.")
}

func TestLoad_SemanticErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		form     string
		wantKind semerr.Kind
	}{
		{
			name: "missing required attribute",
			form: `
				imports = ["types.hcl"]
				section "S" {
				  field "Rating" "score" {
				    step = 1.5
				  }
				}
			`,
			wantKind: semerr.MissingRequiredAttribute,
		},
		{
			name: "mixed list elements",
			form: `
				section "S" {
				  field "ChoiceField" "colour" {
				    choices  = ["a", "b", 1]
				    multiple = false
				  }
				}
			`,
			wantKind: semerr.TypeMismatch,
		},
		{
			name: "integer where a float is declared",
			form: `
				imports = ["types.hcl"]
				section "S" {
				  field "Rating" "score" {
				    max  = 5
				    step = 1
				  }
				}
			`,
			wantKind: semerr.TypeMismatch,
		},
		{
			name: "duplicate field names across sections",
			form: `
				section "A" {
				  field "DateField" "when" {}
				}
				section "B" {
				  field "TimeField" "when" {}
				}
			`,
			wantKind: semerr.DuplicateFieldName,
		},
		{
			name: "type not imported",
			form: `
				section "S" {
				  field "Rating" "score" {
				    max = 5
				  }
				}
			`,
			wantKind: semerr.UnresolvedReference,
		},
		{
			name: "local type shadows a built-in",
			form: `
				field_type "DateField" {
				  template = "date.html"
				}
			`,
			wantKind: semerr.DuplicateBuiltinType,
		},
		{
			name: "redeclared built-in used with its own attribute",
			form: `
				field_type "TextField" {
				  template = "notes.html"
				  attribute "rows" {
				    type = integer
				  }
				}
				section "S" {
				  field "TextField" "notes" {
				    multiline = true
				    rows      = 3
				  }
				}
			`,
			wantKind: semerr.DuplicateBuiltinType,
		},
		{
			name: "local type without template",
			form: `
				field_type "Slider" {
				  attribute "min" {
				    type = integer
				  }
				}
			`,
			wantKind: semerr.EmptyTemplatePath,
		},
		{
			name: "unknown attribute kind",
			form: `
				field_type "Slider" {
				  template = "slider.html"
				  attribute "min" {
				    type = decimal
				  }
				}
			`,
			wantKind: semerr.UnknownAttributeType,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root := testutil.WriteFiles(t, map[string]string{
				"types.hcl": ratingTypes,
				"form.hcl":  tc.form,
			})
			ctx, _ := testutil.LoggerContext(t)

			res, err := NewLoader(nil).Load(ctx, filepath.Join(root, "form.hcl"))
			require.Nil(t, res)
			require.ErrorIs(t, err, tc.wantKind)
			require.Contains(t, err.Error(), "form.hcl:")
		})
	}
}

func TestLoad_SyntaxErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		form        string
		errContains string
	}{
		{
			name:        "unclosed block",
			form:        `section "S" {`,
			errContains: "failed to parse HCL file",
		},
		{
			name:        "unknown block",
			form:        `step "print" "a" {}`,
			errContains: "failed to decode HCL file",
		},
		{
			name: "attribute assigned twice",
			form: `
				section "S" {
				  field "NumberField" "n" {
				    min = 1
				    min = 2
				  }
				}
			`,
			errContains: "failed to parse HCL file",
		},
		{
			name: "variables are not allowed",
			form: `
				section "S" {
				  field "NumberField" "n" {
				    min = var.min
				  }
				}
			`,
			errContains: "failed to decode HCL file",
		},
		{
			name: "nested list type",
			form: `
				field_type "Matrix" {
				  template = "matrix.html"
				  attribute "cells" {
				    type = list(list(integer))
				  }
				}
			`,
			errContains: "Invalid type specification",
		},
		{
			name: "missing import",
			form: `
				imports = ["missing.hcl"]
			`,
			errContains: "failed to read",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root := testutil.WriteFiles(t, map[string]string{"form.hcl": tc.form})
			ctx, _ := testutil.LoggerContext(t)

			_, err := NewLoader(nil).Load(ctx, filepath.Join(root, "form.hcl"))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_TransitiveImports(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"forms/form.hcl": `
			imports = ["../types/base.hcl"]
			section "S" {
			  field "Rating" "score" {
			    max = 3
			  }
			  field "Toggle" "agree" {
			    label = "I agree"
			  }
			}
		`,
		"types/base.hcl": `
			imports = ["extra/toggle.hcl", "../types/extra/toggle.hcl"]
			field_type "Rating" {
			  template = "rating.html"
			  attribute "max" {
			    type     = integer
			    required = true
			  }
			}
		`,
		"types/extra/toggle.hcl": `
			field_type "Toggle" {
			  template = "toggle.html"
			  attribute "label" {
			    type = string
			  }
			}
		`,
	})
	ctx, _ := testutil.LoggerContext(t)

	res, err := NewLoader(nil).Load(ctx, filepath.Join(root, "forms", "form.hcl"))
	require.NoError(t, err)
	require.Len(t, res.Files, 3, "each file is read once")
	require.Len(t, res.Imports, 2)
	require.Equal(t, "base", res.Imports[0].Name())
	require.Equal(t, "toggle", res.Imports[1].Name())

	agree, ok := res.Form.Field("agree")
	require.True(t, ok)
	require.Equal(t, "toggle.html", agree.TemplatePath())
}

func TestLoad_ImportCycle(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"form.hcl": `imports = ["a.hcl"]`,
		"a.hcl":    `imports = ["b.hcl"]`,
		"b.hcl":    `imports = ["a.hcl"]`,
		"self.hcl": `imports = ["self.hcl"]`,
	})
	ctx, _ := testutil.LoggerContext(t)
	loader := NewLoader(nil)

	_, err := loader.Load(ctx, filepath.Join(root, "form.hcl"))
	require.True(t, errors.Is(err, ErrImportCycle), "got %v", err)

	_, err = loader.Load(ctx, filepath.Join(root, "self.hcl"))
	require.ErrorIs(t, err, ErrImportCycle)
}

func TestLoad_ImportedSectionsAreIgnored(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"form.hcl": `
			imports = ["types.hcl"]
			section "Main" {
			  field "DateField" "born" {}
			}
		`,
		"types.hcl": `
			section "Stray" {
			  field "DateField" "born" {}
			}
		`,
	})
	ctx, logs := testutil.LoggerContext(t)

	res, err := NewLoader(nil).Load(ctx, filepath.Join(root, "form.hcl"))
	require.NoError(t, err)
	require.Len(t, res.Form.Fields(), 1)
	require.Contains(t, logs.String(), "Imported file declares sections")
}

func TestLoadFieldTypes(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{"types.hcl": ratingTypes})
	ctx, _ := testutil.LoggerContext(t)

	ns, err := NewLoader(nil).LoadFieldTypes(ctx, filepath.Join(root, "types.hcl"))
	require.NoError(t, err)
	rating, ok := ns.Lookup("Rating")
	require.True(t, ok)
	require.Len(t, rating.Attributes, 3)
	require.Equal(t, model.Scalar(model.KindFloat), rating.Attributes[1].Type)
	require.Equal(t, model.ListOf(model.KindString), rating.Attributes[2].Type)
	require.True(t, model.FloatVal(0.5).Equal(*rating.Attributes[1].Default))
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"types.hcl":      ratingTypes,
		"survey.hcl":     surveyForm,
		"nested/ok.hcl": `
			section "S" {
			  field "DateField" "d" {}
			}
		`,
		"notes/skip.txt": `not hcl`,
	})
	ctx, _ := testutil.LoggerContext(t)

	results, err := NewLoader(nil).LoadAll(ctx, root)
	require.NoError(t, err)
	require.Len(t, results, 3)

	empty := t.TempDir()
	results, err = NewLoader(nil).LoadAll(ctx, empty)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestDecodeDocument_KeepsAssignmentOrder(t *testing.T) {
	t.Parallel()

	src := []byte(testutil.Unindent(`
		section "S" {
		  field "TextField" "name" {
		    placeholder = "Jane"
		    multiline   = false
		    max_length  = 40
		    min_length  = 1
		  }
		}
	`))
	file, diags := hclparse.NewParser().ParseHCL(src, "order.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	doc, diags := decodeDocument(file, "order.hcl", src)
	require.False(t, diags.HasErrors(), diags.Error())
	require.Equal(t, "order", doc.Name)

	var names []string
	for _, av := range doc.Sections[0].Fields[0].Attributes {
		names = append(names, av.Attribute)
	}
	require.Equal(t, []string{"placeholder", "multiline", "max_length", "min_length"}, names)
	require.Equal(t, catalog.TextField, doc.Sections[0].Fields[0].Type)
	require.Equal(t, 2, doc.Sections[0].Fields[0].TypeSource.Line)
}
