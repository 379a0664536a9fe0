package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneykeeper/ledger_backend/internal/validation"
)

func TestValidateFieldAccepts(t *testing.T) {
	tests := []struct {
		schema validation.Schema
		field  string
		value  any
	}{
		{validation.AccountSchema, "name", "Some account"},
		{validation.AccountSchema, "code", "123123123123"},
		{validation.AccountSchema, "code", 100}, // numeric input coerced to string
		{validation.AccountSchema, "start_balance", "100.50"},
		{validation.AccountSchema, "start_balance", ""},
		{validation.OrganizationSchema, "shortcut", "BB"},
		{validation.TransactionSchema, "value", "-100.00"},
		{validation.TransactionSchema, "currency", "RUB"},
		{validation.TransactionSchema, "reason", ""},
	}

	for _, tt := range tests {
		assert.Nil(t, validation.ValidateField(tt.schema, tt.field, tt.value),
			"expected %v to be valid for %s", tt.value, tt.field)
	}
}

func TestValidateFieldRejects(t *testing.T) {
	tests := []struct {
		schema  validation.Schema
		field   string
		value   any
		message string
	}{
		{validation.AccountSchema, "name", "", "value is required"},
		{validation.AccountSchema, "name", strings.Repeat("x", 51), "value exceeds 50 characters"},
		{validation.AccountSchema, "code", strings.Repeat("123409875665", 2), "value exceeds 20 characters"},
		{validation.AccountSchema, "code", "not-a-number", "value is not numeric"},
		{validation.AccountSchema, "start_balance", "12.345", "value is not an amount with at most 2 decimal places"},
		{validation.AccountSchema, "start_balance", "abc", "value is not an amount with at most 2 decimal places"},
		{validation.OrganizationSchema, "shortcut", "TOO LONG SHORT", "value exceeds 10 characters"},
		{validation.TransactionSchema, "currency", "RUBLES", "value must be exactly 3 characters"},
		{validation.TransactionSchema, "category", "overly long!", "value exceeds 10 characters"},
	}

	for _, tt := range tests {
		verr := validation.ValidateField(tt.schema, tt.field, tt.value)
		require.NotNil(t, verr, "expected %v to be rejected for %s", tt.value, tt.field)
		assert.Equal(t, tt.field, verr.Field)
		assert.Equal(t, tt.message, verr.Message)
	}
}

func TestValidateFieldUnknown(t *testing.T) {
	verr := validation.ValidateField(validation.AccountSchema, "no_such_field", "x")
	require.NotNil(t, verr)
	assert.Equal(t, "unknown field", verr.Message)
}

func TestValidateAll(t *testing.T) {
	assert.Nil(t, validation.ValidateAll(validation.AccountSchema, map[string]any{
		"name": "Some account",
		"code": "100",
	}))

	verr := validation.ValidateAll(validation.AccountSchema, map[string]any{
		"name": "Some account",
		"code": "not-a-number",
	})
	require.NotNil(t, verr)
	assert.Equal(t, "code", verr.Field)
}

func TestValidateAllReportsFirstFieldByName(t *testing.T) {
	// With several invalid fields the violation reported must be stable
	// across runs: always the lexicographically first failing field.
	for i := 0; i < 20; i++ {
		verr := validation.ValidateAll(validation.AccountSchema, map[string]any{
			"start_balance": "abc",
			"name":          "",
			"code":          "not-a-number",
		})
		require.NotNil(t, verr)
		assert.Equal(t, "code", verr.Field)
	}
}
