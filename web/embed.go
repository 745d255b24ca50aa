// Package web contiene las plantillas y los estáticos de la consola, embebidos en el binario.
package web

import "embed"

// TemplatesFS plantillas HTML (páginas, tablas parciales y modales).
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS estilos y scripts.
//
//go:embed static/*
var StaticFS embed.FS
