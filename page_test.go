package uniql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_OffsetLimit(t *testing.T) {
	tests := []struct {
		page   PageRequest
		offset int
		limit  int
	}{
		{PageRequest{Number: 1, Size: 20}, 0, 20},
		{PageRequest{Number: 3, Size: 20}, 40, 20},
		{PageRequest{Number: 13, Size: 100}, 1200, 100},
		{PageRequest{Number: 0, Size: 10}, 0, 10},
		{PageRequest{Number: 2, Size: -1}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.page.String(), func(t *testing.T) {
			assert.Equal(t, tt.offset, tt.page.Offset())
			assert.Equal(t, tt.limit, tt.page.Limit())
		})
	}
}

func TestPageRequest_Validate(t *testing.T) {
	assert.NoError(t, PageRequest{Number: 1, Size: 1}.Validate())

	tests := []struct {
		name  string
		page  PageRequest
		param string
	}{
		{"zero number", PageRequest{Number: 0, Size: 10}, "number"},
		{"zero size", PageRequest{Number: 1, Size: 0}, "size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			require.Error(t, err)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, ErrValidation, e.Code)
			assert.Equal(t, tt.param, e.Details["param"])
		})
	}
}

func TestPageRequest_String(t *testing.T) {
	assert.Equal(t, "13-100", PageRequest{Number: 13, Size: 100}.String())
}
