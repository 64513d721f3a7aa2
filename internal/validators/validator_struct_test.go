package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemInput struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Quantity int    `json:"quantity" validate:"min=0,max=10"`
	Kind     string `json:"kind,omitempty" validate:"omitempty,oneof=a b"`
}

func TestStructValidator_TableTest(t *testing.T) {
	v := NewStructValidator()
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name    string
		input   any
		wantMsg string
	}{
		{name: "valid", input: itemInput{Name: "widget", Quantity: 3}},
		{name: "missing name", input: itemInput{}, wantMsg: "name is required"},
		{name: "name too long", input: &itemInput{Name: string(long)}, wantMsg: "name must be at most 255 characters long"},
		{name: "quantity too big", input: itemInput{Name: "w", Quantity: 11}, wantMsg: "quantity must be at most 10"},
		{name: "bad kind", input: itemInput{Name: "w", Kind: "c"}, wantMsg: "kind must be one of: a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestStructValidator_Partial(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), itemInput{Quantity: 1}, "Quantity")
	assert.NoError(t, err)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

type pageQuery struct {
	PageSize int    `json:"pageSize" mapstructure:"page_size" validate:"max=100"`
	Cursor   string `validate:"omitempty,min=4"`
}

func TestStructValidatorForTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		input   pageQuery
		wantMsg string
	}{
		{name: "mapstructure name", tag: "mapstructure", input: pageQuery{PageSize: 101}, wantMsg: "page_size must be at most 100"},
		{name: "json name", tag: "json", input: pageQuery{PageSize: 101}, wantMsg: "pageSize must be at most 100"},
		{name: "untagged field keeps go name", tag: "mapstructure", input: pageQuery{Cursor: "ab"}, wantMsg: "Cursor must be at least 4 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStructValidatorForTag(tt.tag).Validate(context.Background(), tt.input)

			require.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
