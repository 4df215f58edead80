package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nolfolio/pkg/query"
)

func TestIntSlice_DropsInvalid(t *testing.T) {
	got := query.IntSlice([]string{"2024", "abc", "", " 2025 ", "20x", "-3"})
	assert.Equal(t, []int{2024, -3}, got)
}

func TestIntSlice_EmptyIsNotNil(t *testing.T) {
	got := query.IntSlice(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStringSlice_RemovesEmpty(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, query.StringSlice([]string{"A", "", "B"}))
}

func TestCSV(t *testing.T) {
	assert.Nil(t, query.CSV(""))
	assert.Equal(t, []string{"a", "b"}, query.CSV(" a, ,b "))
}

func TestTriBool(t *testing.T) {
	tests := []struct {
		in   string
		want *bool
	}{
		{"true", boolPtr(true)},
		{"false", boolPtr(false)},
		{"TRUE", nil},
		{"1", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, query.TriBool(tt.in))
		})
	}
}

func boolPtr(b bool) *bool { return &b }
