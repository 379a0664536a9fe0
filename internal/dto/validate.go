package dto

// ValidateFieldRequest checks one candidate value against a model
// schema, so front-ends can validate input one field per interaction
// step, before a complete object exists.
type ValidateFieldRequest struct {
	Schema string `json:"schema" binding:"required,oneof=account bank_account stock_account organization transaction"`
	Field  string `json:"field" binding:"required"`
	Value  any    `json:"value"`
}

// ValidateFieldResponse carries the outcome. Message is set only when
// the value was rejected.
type ValidateFieldResponse struct {
	Valid   bool   `json:"valid"`
	Field   string `json:"field"`
	Message string `json:"message,omitempty"`
}
