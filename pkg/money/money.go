// Package money formatea importes con dos decimales y separador de miles según el idioma.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter imprime importes con la etiqueta de moneda configurada.
type Formatter struct {
	currency string
	group    string
	point    string
}

// NewFormatter construye el formatter. Con tag vacío usa inglés (1,234.50).
// Los separadores salen del printer del idioma; los dígitos se arman desde el
// decimal para no perder precisión en importes grandes.
func NewFormatter(currency string, tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return &Formatter{
		currency: strings.TrimSpace(currency),
		group:    between(p.Sprintf("%d", 10000), "10", "000", ","),
		point:    between(p.Sprintf("%.1f", 1.5), "1", "5", "."),
	}
}

// Amount devuelve el importe con dos decimales y separador de miles.
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupDigits(intPart, f.group) + f.point + frac
}

// WithCurrency antepone la etiqueta de moneda: "Rs. 1,234.50".
func (f *Formatter) WithCurrency(d decimal.Decimal) string {
	if f.currency == "" {
		return f.Amount(d)
	}
	return f.currency + " " + f.Amount(d)
}

// Currency devuelve la etiqueta de moneda.
func (f *Formatter) Currency() string {
	return f.currency
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// between extrae el separador que el printer puso entre prefix y suffix.
func between(s, prefix, suffix, def string) string {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) || len(s) <= len(prefix)+len(suffix) {
		return def
	}
	return s[len(prefix) : len(s)-len(suffix)]
}
