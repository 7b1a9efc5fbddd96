package attrschema

import (
	"fmt"
	"strconv"
	"time"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

type ErrorCode string

const (
	CodeRequired        ErrorCode = "Required"
	CodeNotAString      ErrorCode = "NotAString"
	CodeNotANumber      ErrorCode = "NotANumber"
	CodeInvalidBoolean  ErrorCode = "InvalidBoolean"
	CodeInvalidOption   ErrorCode = "InvalidOption"
	CodeInvalidDate     ErrorCode = "InvalidDate"
	CodeDateTooEarly    ErrorCode = "DateTooEarly"
	CodeDateTooLate     ErrorCode = "DateTooLate"
	CodeUnsupportedType ErrorCode = "UnsupportedType"
	// CodeUnknownAttribute is not produced by Validate itself: it reports a
	// submitted attribute ID that has no active definition for the listing's
	// category.
	CodeUnknownAttribute ErrorCode = "UnknownAttribute"
)

// FieldError reports a validation failure for one attribute field. It never
// aborts validation of sibling fields.
type FieldError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
}

func newFieldError(def *domain.AttributeDefinition, code ErrorCode, msg string) *FieldError {
	return &FieldError{Field: def.Name, Code: code, Message: msg}
}

// Validate decides whether a raw input is acceptable for the definition and
// returns the typed value to store. A (nil, nil) result means the field was
// optional and empty: nothing is stored.
func Validate(def *domain.AttributeDefinition, raw interface{}) (*domain.TypedValue, *FieldError) {
	if isEmpty(raw) {
		if def.Required {
			return nil, newFieldError(def, CodeRequired, "value is required")
		}
		return nil, nil
	}

	switch def.ValueType {
	case domain.TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, newFieldError(def, CodeNotAString, "expected a string")
		}
		v := domain.StringValue(s)
		return &v, nil

	case domain.TypeNumber:
		f, ok := toFloat(raw)
		if !ok {
			return nil, newFieldError(def, CodeNotANumber, fmt.Sprintf("%q is not a number", raw))
		}
		v := domain.NumberValue(f)
		return &v, nil

	case domain.TypeBoolean:
		b, ok := toBool(raw)
		if !ok {
			return nil, newFieldError(def, CodeInvalidBoolean, "expected true or false")
		}
		v := domain.BoolValue(b)
		return &v, nil

	case domain.TypeSelect:
		s, ok := raw.(string)
		if !ok {
			return nil, newFieldError(def, CodeInvalidOption, "expected one of the configured options")
		}
		for _, opt := range def.Options {
			if s == opt {
				v := domain.StringValue(s)
				return &v, nil
			}
		}
		return nil, newFieldError(def, CodeInvalidOption, fmt.Sprintf("%q is not a valid option", s))

	case domain.TypeDate:
		s, ok := raw.(string)
		if !ok {
			return nil, newFieldError(def, CodeInvalidDate, "expected a date string")
		}
		t, err := ParseDate(def.DateFormat, s)
		if err != nil {
			return nil, newFieldError(def, CodeInvalidDate, fmt.Sprintf("%q is not a valid date", s))
		}
		if def.MinDate != nil && t.Before(*def.MinDate) {
			return nil, newFieldError(def, CodeDateTooEarly, fmt.Sprintf("date must not be before %s", def.MinDate.Format("2006-01-02")))
		}
		if def.MaxDate != nil && t.After(*def.MaxDate) {
			return nil, newFieldError(def, CodeDateTooLate, fmt.Sprintf("date must not be after %s", def.MaxDate.Format("2006-01-02")))
		}
		v := domain.DateValue(t)
		return &v, nil

	default:
		return nil, newFieldError(def, CodeUnsupportedType, fmt.Sprintf("unsupported value type %q", def.ValueType))
	}
}

// ParseDate parses a raw date string against the layouts the date format
// allows. The first matching layout wins.
func ParseDate(format domain.DateFormat, raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts(format) {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func dateLayouts(format domain.DateFormat) []string {
	switch format {
	case domain.DateFormatDateTime:
		return []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02 15:04"}
	case domain.DateFormatMonth:
		return []string{"2006-01"}
	case domain.DateFormatYear:
		return []string{"2006"}
	default: // DateFormatDate and definitions created before the field existed
		return []string{"2006-01-02", time.RFC3339}
	}
}

func isEmpty(raw interface{}) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && s == ""
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toBool(raw interface{}) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		if v == "true" {
			return true, true
		}
		if v == "false" {
			return false, true
		}
	}
	return false, false
}
