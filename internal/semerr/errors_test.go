package semerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *Error
		want string
	}{
		{
			err:  &Error{Kind: EmptyTemplatePath, Name: "Rating"},
			want: "template path for field type Rating can not be empty",
		},
		{
			err:  &Error{Kind: DuplicateBuiltinType, Name: "TextField"},
			want: "a predefined field type TextField already exists",
		},
		{
			err:  &Error{Kind: MissingRequiredAttribute, Name: "max", Owner: "Rating", Container: "score"},
			want: "required attribute max of field type Rating is missing from field score",
		},
		{
			err:  &Error{Kind: TypeMismatch, Name: "max", Owner: "Rating", Expected: "integer", Actual: "string"},
			want: "the type of attribute max of field type Rating must be integer, got string",
		},
		{
			err:  &Error{Kind: UnresolvedReference, RefKind: "attribute", Name: "step", Owner: "Rating"},
			want: "unresolved attribute reference step in field type Rating",
		},
		{
			err: &Error{
				Kind:   DuplicateFieldName,
				Name:   "email",
				Source: model.SourceInfo{File: "form.hcl", Line: 12, Column: 3},
			},
			want: "form.hcl:12:3: field email already exists; field names must be unique",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.err.Kind), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorMatching(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("building form: %w", &Error{Kind: TypeMismatch, Name: "max"})

	require.True(t, errors.Is(err, TypeMismatch))
	require.False(t, errors.Is(err, DuplicateFieldName))
	require.True(t, errors.Is(err, &Error{Kind: TypeMismatch}))

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, TypeMismatch, kind)

	_, ok = KindOf(errors.New("plain"))
	require.False(t, ok)
}

func TestList(t *testing.T) {
	t.Parallel()

	var l List
	require.NoError(t, l.First())

	l.Add(&Error{Kind: DuplicateFieldName, Name: "a"})
	l.Add(&Error{Kind: DuplicateFieldName, Name: "b"})
	require.Len(t, l, 2)
	require.Equal(t, "field a already exists; field names must be unique", l.First().Error())
}
