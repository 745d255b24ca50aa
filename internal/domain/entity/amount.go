package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount importe tolerante: el backend puede enviar número, texto numérico o null.
// Un valor ausente o no numérico queda con Valid=false y cuenta como cero en los totales.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount construye un importe válido.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// ParseAmount interpreta texto; devuelve un importe inválido si no es numérico.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// Decimal devuelve el valor, o cero si no es válido.
func (a Amount) Decimal() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// String representación para tablas: el número tal cual, o vacío.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Value.String()
}

// UnmarshalJSON nunca falla por el contenido del importe.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*a = ParseAmount(s)
		return nil
	default:
		*a = ParseAmount(string(b))
		return nil
	}
}

// MarshalJSON emite el número o null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}
