// Package datefmt convierte fechas (time.Time o texto) a los formatos cortos de la consola:
// DD-MM-YY y DD-MM-YY HH:MM. Los textos que ya vienen en ese formato se devuelven tal cual,
// así que aplicar el formateo dos veces no cambia el resultado.
package datefmt

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

// Separator separador entre día, mes y año.
type Separator string

const (
	Dash  Separator = "-"
	Slash Separator = "/"
)

var (
	shortDate = map[Separator]*regexp.Regexp{
		Dash:  regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`),
		Slash: regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`),
	}
	shortDateTime = map[Separator]*regexp.Regexp{
		Dash:  regexp.MustCompile(`^\d{2}-\d{2}-\d{2} \d{2}:\d{2}$`),
		Slash: regexp.MustCompile(`^\d{2}/\d{2}/\d{2} \d{2}:\d{2}$`),
	}
)

// Layouts con zona explícita; se convierten a la ubicación configurada.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// Layouts sin zona; se interpretan en la ubicación configurada.
var wallLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02-01-06 15:04",
	"02-01-06",
}

var location atomic.Pointer[time.Location]

func init() {
	location.Store(time.Local)
}

// SetLocation fija la zona en la que se muestran las fechas. nil restaura time.Local.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	location.Store(loc)
}

// Location devuelve la zona configurada.
func Location() *time.Location {
	return location.Load()
}

// FormatDate formatea como DD-MM-YY.
func FormatDate(v any) string {
	return FormatDateWith(v, Dash)
}

// FormatDateWith formatea como DD<sep>MM<sep>YY.
func FormatDateWith(v any, sep Separator) string {
	s, isString := v.(string)
	if isString && shortDate[sep] != nil && shortDate[sep].MatchString(s) {
		return s
	}
	t, ok := toTime(v)
	if !ok {
		return fallback(s, isString)
	}
	return formatDay(t, sep)
}

// FormatDateTime formatea como DD-MM-YY HH:MM (24h).
func FormatDateTime(v any) string {
	return FormatDateTimeWith(v, Dash)
}

// FormatDateTimeWith formatea como DD<sep>MM<sep>YY HH:MM.
func FormatDateTimeWith(v any, sep Separator) string {
	s, isString := v.(string)
	if isString && shortDateTime[sep] != nil && (shortDateTime[sep].MatchString(s) || shortDate[sep].MatchString(s)) {
		return s
	}
	t, ok := toTime(v)
	if !ok {
		return fallback(s, isString)
	}
	return fmt.Sprintf("%s %02d:%02d", formatDay(t, sep), t.Hour(), t.Minute())
}

// Parse interpreta el valor como instante en la zona configurada.
func Parse(v any) (time.Time, bool) {
	return toTime(v)
}

func formatDay(t time.Time, sep Separator) string {
	return fmt.Sprintf("%02d%s%02d%s%02d", t.Day(), sep, int(t.Month()), sep, t.Year()%100)
}

func fallback(s string, isString bool) string {
	if isString {
		return s
	}
	return ""
}

func toTime(v any) (time.Time, bool) {
	loc := Location()
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x.In(loc), true
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return x.In(loc), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range instantLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.In(loc), true
			}
		}
		for _, layout := range wallLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
