package validator

import (
	"strings"
	"testing"

	"blog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,max=32"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Username: "alice", Email: "alice@example.com"}))

	err := v.Validate(&signup{Email: "not-an-email"})
	validationErr, ok := errors.AsTarget[*ValidationError](err)
	require.True(t, ok)
	assert.ElementsMatch(t, []FieldError{
		{Field: "username", Rule: "required"},
		{Field: "email", Rule: "email"},
	}, validationErr.Fields)
	assert.Contains(t, err.Error(), "username failed required")
}

type account struct {
	Username string `json:"username" validate:"required,notblank,trimmed,max=32"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     account
		wantField string
		wantRule  string
	}{
		{name: "whitespace only username", input: account{Username: "   ", Password: "secret"}, wantField: "username", wantRule: "notblank"},
		{name: "padded username", input: account{Username: " alice", Password: "secret"}, wantField: "username", wantRule: "trimmed"},
		{name: "multi-byte password over 72 bytes", input: account{Username: "alice", Password: strings.Repeat("密", 30)}, wantField: "password", wantRule: "maxbytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)

			validationErr, ok := errors.AsTarget[*ValidationError](err)
			require.True(t, ok)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tt.wantField, validationErr.Fields[0].Field)
			assert.Equal(t, tt.wantRule, validationErr.Fields[0].Rule)
		})
	}

	t.Run("multi-byte password within 72 bytes", func(t *testing.T) {
		assert.NoError(t, v.Validate(&account{Username: "alice", Password: strings.Repeat("密", 24)}))
	})
}
