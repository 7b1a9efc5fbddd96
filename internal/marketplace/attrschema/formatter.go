package attrschema

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

// Formatter renders stored attribute values for display. It never returns an
// error: anything it cannot interpret is passed through unchanged.
type Formatter struct {
	printer *message.Printer
	yes     string
	no      string
}

func NewFormatter(tag language.Tag) *Formatter {
	yes, no := "Yes", "No"
	if tag == language.French {
		yes, no = "Oui", "Non"
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		yes:     yes,
		no:      no,
	}
}

// Format renders a typed value. Empty values render as "-".
func (f *Formatter) Format(def *domain.AttributeDefinition, value *domain.TypedValue) string {
	if value == nil {
		return "-"
	}
	switch value.Kind {
	case domain.KindBoolean:
		if value.Bool {
			return f.yes
		}
		return f.no
	case domain.KindNumber:
		return f.printer.Sprint(number.Decimal(value.Num))
	case domain.KindDate:
		return value.Time.Format(displayLayout(def.DateFormat))
	default:
		if value.Str == "" {
			return "-"
		}
		return value.Str
	}
}

// FormatRaw renders a raw stored string. Dates that fail to parse are
// returned unchanged rather than raising.
func (f *Formatter) FormatRaw(def *domain.AttributeDefinition, raw string) string {
	if raw == "" {
		return "-"
	}
	switch def.ValueType {
	case domain.TypeBoolean:
		if b, ok := toBool(raw); ok {
			if b {
				return f.yes
			}
			return f.no
		}
		return raw
	case domain.TypeNumber:
		if n, ok := toFloat(raw); ok {
			return f.printer.Sprint(number.Decimal(n))
		}
		return raw
	case domain.TypeDate:
		t, err := ParseDate(def.DateFormat, raw)
		if err != nil {
			return raw
		}
		return t.Format(displayLayout(def.DateFormat))
	default:
		return raw
	}
}

func displayLayout(format domain.DateFormat) string {
	switch format {
	case domain.DateFormatDateTime:
		return "02/01/2006 15:04"
	case domain.DateFormatMonth:
		return "01/2006"
	case domain.DateFormatYear:
		return "2006"
	default:
		return "02/01/2006"
	}
}
