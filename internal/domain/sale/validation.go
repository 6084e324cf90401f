package sale

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const MaxNameLength = 255

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// ForField returns the messages recorded for field.
func (v ValidationErrors) ForField(field string) []string {
	var out []string
	for _, fe := range v {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

func (s *Sale) AddError(field, message string) {
	s.errors = append(s.errors, FieldError{Field: field, Message: message})
}

// Validate replaces the error list with the result of the field checks and
// reports whether the sale is valid.
func (s *Sale) Validate() bool {
	s.errors = nil

	name := strings.TrimSpace(s.name)
	switch {
	case name == "":
		s.AddError("name", "Name cannot be blank.")
	case utf8.RuneCountInString(name) > MaxNameLength:
		s.AddError("name", "Name is too long.")
	}

	amount := s.discount.Amount()
	switch s.discount.Type() {
	case DiscountTypePercentage:
		if amount.LessThan(decimal.NewFromInt(-1)) || amount.IsPositive() {
			s.AddError("discountAmount", "Percentage discount must be between -1 and 0.")
		}
	case DiscountTypeFlat:
		if amount.IsPositive() {
			s.AddError("discountAmount", "Flat discount cannot be positive.")
		}
	default:
		s.AddError("discountType", "Discount type is invalid.")
	}

	if s.dateFrom != nil && s.dateTo != nil && !s.dateTo.After(*s.dateFrom) {
		s.AddError("dateTo", "End date must be after start date.")
	}

	return len(s.errors) == 0
}
