package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAttrType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    AttrType
		wantErr bool
	}{
		{in: "string", want: Scalar(KindString)},
		{in: "integer", want: Scalar(KindInteger)},
		{in: "float", want: Scalar(KindFloat)},
		{in: "boolean", want: Scalar(KindBoolean)},
		{in: "string[]", want: ListOf(KindString)},
		{in: " integer [] ", want: ListOf(KindInteger)},
		{in: "list(boolean)", want: ListOf(KindBoolean)},
		{in: "number", wantErr: true},
		{in: "string[][]", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAttrType(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAttrTypeString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "integer", Scalar(KindInteger).String())
	require.Equal(t, "string[]", ListOf(KindString).String())
	require.Equal(t, "invalid", AttrType{}.String())
}

func TestAttrTypeAccepts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		typ  AttrType
		val  Value
		want bool
	}{
		{"string scalar", Scalar(KindString), StringVal("a"), true},
		{"integer scalar", Scalar(KindInteger), IntVal(3), true},
		{"float scalar", Scalar(KindFloat), FloatVal(1.5), true},
		{"boolean scalar", Scalar(KindBoolean), BoolVal(false), true},
		{"string where integer declared", Scalar(KindInteger), StringVal("3"), false},
		{"integer is not promoted to float", Scalar(KindFloat), IntVal(1), false},
		{"float is not an integer", Scalar(KindInteger), FloatVal(1), false},
		{"list where scalar declared", Scalar(KindString), ListVal(StringVal("a")), false},
		{"scalar where list declared", ListOf(KindString), StringVal("a"), false},
		{"homogeneous list", ListOf(KindString), ListVal(StringVal("a"), StringVal("b")), true},
		{"empty list", ListOf(KindString), ListVal(), true},
		{"mixed list", ListOf(KindString), ListVal(StringVal("a"), StringVal("b"), IntVal(1)), false},
		{"mixed list with wrong first element", ListOf(KindString), ListVal(IntVal(1), StringVal("a")), false},
		{"nested list", ListOf(KindString), ListVal(ListVal(StringVal("a"))), false},
		{"invalid value", Scalar(KindString), Value{}, false},
		{"invalid type", AttrType{}, Value{}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.typ.Accepts(tc.val))
		})
	}
}
