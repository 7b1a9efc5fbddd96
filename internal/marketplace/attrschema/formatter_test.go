package attrschema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

func TestFormat_NilValueIsDash(t *testing.T) {
	f := NewFormatter(language.French)
	def := &domain.AttributeDefinition{Name: "Marque", ValueType: domain.TypeString}

	assert.Equal(t, "-", f.Format(def, nil))
}

func TestFormat_BooleanLocalized(t *testing.T) {
	def := &domain.AttributeDefinition{Name: "Meublé", ValueType: domain.TypeBoolean}

	fr := NewFormatter(language.French)
	yes := domain.BoolValue(true)
	no := domain.BoolValue(false)
	assert.Equal(t, "Oui", fr.Format(def, &yes))
	assert.Equal(t, "Non", fr.Format(def, &no))

	en := NewFormatter(language.English)
	assert.Equal(t, "Yes", en.Format(def, &yes))
}

func TestFormat_NumberRoundTrip(t *testing.T) {
	// validate "42", store 42, format back: the digits survive
	def := &domain.AttributeDefinition{Name: "Surface", ValueType: domain.TypeNumber}
	typed, fieldErr := Validate(def, "42")
	require.Nil(t, fieldErr)

	f := NewFormatter(language.French)
	assert.Equal(t, "42", f.Format(def, typed))
}

func TestFormat_NumberGrouping(t *testing.T) {
	def := &domain.AttributeDefinition{Name: "Kilométrage", ValueType: domain.TypeNumber}
	value := domain.NumberValue(125000)

	f := NewFormatter(language.French)
	formatted := f.Format(def, &value)

	digits := ""
	for _, r := range formatted {
		if r >= '0' && r <= '9' {
			digits += string(r)
		}
	}
	assert.Equal(t, "125000", digits)
	assert.NotEqual(t, "125000", formatted, "French formatting groups thousands")
}

func TestFormat_DateLayouts(t *testing.T) {
	f := NewFormatter(language.French)
	value := domain.DateValue(time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC))

	cases := []struct {
		format domain.DateFormat
		want   string
	}{
		{domain.DateFormatDate, "10/05/2023"},
		{domain.DateFormatDateTime, "10/05/2023 14:30"},
		{domain.DateFormatMonth, "05/2023"},
		{domain.DateFormatYear, "2023"},
	}
	for _, tc := range cases {
		def := &domain.AttributeDefinition{Name: "Date", ValueType: domain.TypeDate, DateFormat: tc.format}
		assert.Equal(t, tc.want, f.Format(def, &value))
	}
}

func TestFormatRaw_IdempotentForStrings(t *testing.T) {
	f := NewFormatter(language.French)
	def := &domain.AttributeDefinition{Name: "Marque", ValueType: domain.TypeString}

	once := f.FormatRaw(def, "Peugeot 208")
	twice := f.FormatRaw(def, once)
	assert.Equal(t, once, twice)
}

func TestFormatRaw_UnparseableDatePassesThrough(t *testing.T) {
	f := NewFormatter(language.French)
	def := &domain.AttributeDefinition{Name: "Date", ValueType: domain.TypeDate, DateFormat: domain.DateFormatDate}

	assert.Equal(t, "bientôt", f.FormatRaw(def, "bientôt"))
}
