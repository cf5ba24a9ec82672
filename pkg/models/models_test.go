package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	cases := []struct {
		name string
		list StringList
		want string
	}{
		{"nil", nil, `[]`},
		{"empty", StringList{}, `[]`},
		{"ordered", StringList{"b", "a", "c"}, `["b","a","c"]`},
		{"unicode", StringList{"дом", "работа"}, `["дом","работа"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.list.Value()
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(`["b","a","c"]`))
	require.Equal(t, StringList{"b", "a", "c"}, l)

	require.NoError(t, l.Scan([]byte(`["x"]`)))
	require.Equal(t, StringList{"x"}, l)

	require.NoError(t, l.Scan(nil))
	require.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan(""))
	require.Equal(t, StringList{}, l)

	require.Error(t, l.Scan(42))
}

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"c", "b", "b", "a"}
	v, err := in.Value()
	require.NoError(t, err)
	var out StringList
	require.NoError(t, out.Scan(v))
	require.Equal(t, in, out)
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "title", Reason: "must not be empty"}
	require.EqualError(t, err, `invalid field "title": must not be empty`)
}
