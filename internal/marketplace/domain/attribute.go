package domain

import "time"

type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeSelect  ValueType = "select"
	TypeDate    ValueType = "date"
)

type DateFormat string

const (
	DateFormatDate     DateFormat = "date"
	DateFormatDateTime DateFormat = "datetime"
	DateFormatMonth    DateFormat = "month"
	DateFormatYear     DateFormat = "year"
)

// AttributeDefinition is an admin-configured custom field scoped to one
// category. (CategoryID, Name) is unique.
type AttributeDefinition struct {
	ID          string     `json:"id"`
	CategoryID  string     `json:"category_id"`
	Name        string     `json:"name"`
	ValueType   ValueType  `json:"value_type"`
	Options     []string   `json:"options,omitempty"` // only meaningful for TypeSelect, must be non-empty then
	Required    bool       `json:"required"`
	Order       int        `json:"order"`
	Placeholder string     `json:"placeholder,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	DateFormat  DateFormat `json:"date_format,omitempty"` // only meaningful for TypeDate
	MinDate     *time.Time `json:"min_date,omitempty"`
	MaxDate     *time.Time `json:"max_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
	KindDate    ValueKind = "date"
)

// TypedValue is the tagged union stored for an attribute. Instances are
// constructed by the validator; the store layer never accepts untyped
// payloads.
type TypedValue struct {
	Kind ValueKind `json:"kind"`
	Str  string    `json:"str"`
	Num  float64   `json:"num"`
	Bool bool      `json:"bool"`
	Time time.Time `json:"time"`
}

func StringValue(s string) TypedValue  { return TypedValue{Kind: KindString, Str: s} }
func NumberValue(f float64) TypedValue { return TypedValue{Kind: KindNumber, Num: f} }
func BoolValue(b bool) TypedValue      { return TypedValue{Kind: KindBoolean, Bool: b} }
func DateValue(t time.Time) TypedValue { return TypedValue{Kind: KindDate, Time: t} }

// AttributeValue binds one TypedValue to one (listing, definition) pair.
// (ListingID, AttributeID) is unique.
type AttributeValue struct {
	ID          string
	ListingID   string
	AttributeID string
	Value       TypedValue
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
