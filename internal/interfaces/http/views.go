package http

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/pkg/money"
	"github.com/shopspring/decimal"
)

// Views plantillas HTML de la consola (páginas completas, tablas parciales y modales).
type Views struct {
	tmpl *template.Template
}

// NewViews parsea templates/*.html del sistema de archivos dado.
func NewViews(fsys fs.FS, m *money.Formatter) (*Views, error) {
	funcs := template.FuncMap{
		"money": m.WithCurrency,
		"amountText": func(s string) string {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return s
			}
			return m.Amount(d)
		},
		"dict": dict,
	}
	tmpl, err := template.New("console").Funcs(funcs).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("views: parsear plantillas: %w", err)
	}
	return &Views{tmpl: tmpl}, nil
}

// Render ejecuta la plantilla en un buffer para no enviar HTML a medias si falla.
func (v *Views) Render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("views: %s: %w", name, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// dict arma un mapa para pasar varios valores a una plantilla anidada.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: número impar de argumentos")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: clave %v no es texto", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
