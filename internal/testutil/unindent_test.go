package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnindent(t *testing.T) {
	t.Parallel()

	got := Unindent(`
		section "A" {
		  field "DateField" "born" {}
		}
	`)
	require.Equal(t, "section \"A\" {\n  field \"DateField\" \"born\" {}\n}\n", got)
	require.Equal(t, "", Unindent(""))
}
