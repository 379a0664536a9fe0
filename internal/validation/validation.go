package validation

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
)

// Schema maps a model's field names to their declared constraint rules.
// Schemas exist separately from the domain structs so a single field can
// be validated before a complete object exists: the front-end collects
// input one field per interaction step.
type Schema map[string]string

var (
	AccountSchema = Schema{
		"name":          "required,max=50",
		"code":          "required,max=20,numeric",
		"start_balance": "omitempty,money",
	}

	BankAccountSchema = Schema{
		"name":            "required,max=50",
		"code":            "required,max=20,numeric",
		"start_balance":   "omitempty,money",
		"annual_interest": "omitempty,money",
	}

	StockAccountSchema = Schema{
		"name":          "required,max=50",
		"code":          "required,max=20,numeric",
		"start_balance": "omitempty,money",
		"stock_value":   "omitempty,money",
	}

	OrganizationSchema = Schema{
		"name":     "required,max=50",
		"shortcut": "required,max=10",
	}

	TransactionSchema = Schema{
		"value":    "required,money",
		"currency": "omitempty,len=3,alpha",
		"reason":   "omitempty,max=20",
		"category": "omitempty,max=10",
	}
)

// SchemaByName resolves a schema from its wire name, for callers that
// address schemas as strings.
func SchemaByName(name string) (Schema, bool) {
	switch name {
	case "account":
		return AccountSchema, true
	case "bank_account":
		return BankAccountSchema, true
	case "stock_account":
		return StockAccountSchema, true
	case "organization":
		return OrganizationSchema, true
	case "transaction":
		return TransactionSchema, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// money: a decimal amount with at most 2 fractional digits.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Exponent() >= -2
	})
	return v
}

// ValidateField checks a single candidate value against the schema rule
// for field. Numeric candidates are coerced to their string target type
// first; a coercion that still fails the rule is a validation error,
// never a panic. Returns nil when the value is acceptable.
func ValidateField(schema Schema, field string, candidate any) *apperrors.ValidationError {
	rule, ok := schema[field]
	if !ok {
		return apperrors.NewValidationError(field, "unknown field")
	}

	if err := validate.Var(coerce(candidate), rule); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return apperrors.NewValidationError(field, "value is invalid")
		}
		return apperrors.NewValidationError(field, message(verrs[0]))
	}
	return nil
}

// ValidateAll runs every field of values against the schema and returns
// the first violation found, if any. Fields are checked in sorted name
// order so the reported violation is stable.
func ValidateAll(schema Schema, values map[string]any) *apperrors.ValidationError {
	fields := make([]string, 0, len(values))
	for field := range values {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if err := ValidateField(schema, field, values[field]); err != nil {
			return err
		}
	}
	return nil
}

func coerce(candidate any) string {
	switch v := candidate.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "max":
		return fmt.Sprintf("value exceeds %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("value must be exactly %s characters", fe.Param())
	case "numeric":
		return "value is not numeric"
	case "alpha":
		return "value must contain only letters"
	case "money":
		return "value is not an amount with at most 2 decimal places"
	default:
		return "value is invalid"
	}
}
