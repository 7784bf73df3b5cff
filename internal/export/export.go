// Package export renders validated forms as YAML or JSON documents for
// renderers and other tools downstream of the model.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/formdsl/internal/model"
	"gopkg.in/yaml.v3"
)

// Form is the serialisable view of a validated form.
type Form struct {
	Name     string    `json:"name" yaml:"name"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is the serialisable view of a section.
type Section struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field is the serialisable view of a field. Attributes holds the effective
// values: explicit assignments, plus declared defaults for the rest.
// Attributes without either are left out.
type Field struct {
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Builtin    bool           `json:"builtin" yaml:"builtin"`
	Template   string         `json:"template,omitempty" yaml:"template,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// FromModel converts a validated form.
func FromModel(form *model.Form) *Form {
	out := &Form{Name: form.Name, Sections: make([]Section, 0, len(form.Sections))}
	for _, section := range form.Sections {
		s := Section{Name: section.Name, Fields: make([]Field, 0, len(section.Fields))}
		for _, field := range section.Fields {
			s.Fields = append(s.Fields, fromField(field))
		}
		out.Sections = append(out.Sections, s)
	}
	return out
}

func fromField(field *model.Field) Field {
	f := Field{
		Name:     field.Name,
		Type:     field.Type.Name,
		Builtin:  field.Type.Builtin,
		Template: field.TemplatePath(),
	}
	for _, attr := range field.Type.Attributes {
		v, ok := field.Lookup(attr.Name)
		if !ok {
			continue
		}
		if f.Attributes == nil {
			f.Attributes = make(map[string]any, len(field.Type.Attributes))
		}
		f.Attributes[attr.Name] = v.Interface()
	}
	return f
}

// YAML writes form as a YAML document.
func YAML(w io.Writer, form *model.Form) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromModel(form)); err != nil {
		return fmt.Errorf("failed to encode form %s as YAML: %w", form.Name, err)
	}
	return enc.Close()
}

// JSON writes form as an indented JSON document.
func JSON(w io.Writer, form *model.Form) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromModel(form)); err != nil {
		return fmt.Errorf("failed to encode form %s as JSON: %w", form.Name, err)
	}
	return nil
}
