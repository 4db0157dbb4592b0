package uniql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"asc", Asc},
		{"ASC", Asc},
		{"", Asc},
		{"desc", Desc},
		{"Desc", Desc},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDirection("up")
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrValidation, e.Code)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "asc", Asc.String())
	assert.Equal(t, "desc", Desc.String())
}

func TestSortRequest_String(t *testing.T) {
	assert.Equal(t, "+name,unitPrice", SortRequest{Direction: Asc, Fields: []string{"name", "unitPrice"}}.String())
	assert.Equal(t, "-id", SortRequest{Direction: Desc, Fields: []string{"id"}}.String())
}

func TestSortRequest_Validate(t *testing.T) {
	assert.NoError(t, SortRequest{Fields: []string{"a", "b_1"}}.Validate())
	assert.Error(t, SortRequest{}.Validate())
	assert.Error(t, SortRequest{Fields: []string{"a.b"}}.Validate())
	assert.Error(t, SortRequest{Fields: []string{""}}.Validate())
}
