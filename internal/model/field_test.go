package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldLookupFallsBackToDefault(t *testing.T) {
	t.Parallel()

	def := IntVal(10)
	ft := &FieldType{
		Name:         "Rating",
		TemplatePath: "rating.html",
		Attributes: []*Attribute{
			{Name: "max", Type: Scalar(KindInteger), Default: &def},
			{Name: "label", Type: Scalar(KindString)},
		},
	}
	field := &Field{
		Name:       "score",
		Type:       ft,
		Attributes: map[string]Value{"label": StringVal("Score")},
	}

	got, ok := field.Lookup("label")
	require.True(t, ok)
	require.True(t, got.Equal(StringVal("Score")))

	got, ok = field.Lookup("max")
	require.True(t, ok)
	require.True(t, got.Equal(IntVal(10)))

	_, ok = field.Lookup("missing")
	require.False(t, ok)

	require.Equal(t, "rating.html", field.TemplatePath())
}

func TestFormFieldsInDocumentOrder(t *testing.T) {
	t.Parallel()

	form := &Form{Sections: []*Section{
		{Name: "a", Fields: []*Field{{Name: "one"}, {Name: "two"}}},
		{Name: "b", Fields: []*Field{{Name: "three"}}},
	}}

	var names []string
	for _, f := range form.Fields() {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"one", "two", "three"}, names)

	f, ok := form.Field("three")
	require.True(t, ok)
	require.Equal(t, "three", f.Name)
}

func TestSourceInfoString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "", SourceInfo{}.String())
	require.Equal(t, "form.hcl", SourceInfo{File: "form.hcl"}.String())
	require.Equal(t, "form.hcl:3:5", SourceInfo{File: "form.hcl", Line: 3, Column: 5}.String())
}
