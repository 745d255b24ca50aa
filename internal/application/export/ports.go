package export

import (
	"context"
	"time"
)

// ReportGenerator puerto de salida hacia el generador de PDF.
type ReportGenerator interface {
	GenerateExpenseReport(ctx context.Context, report *Report) ([]byte, error)
}

// Report contenido del resumen de gastos: título, línea de rango, total alineado a la
// derecha y la tabla [#, Item, Fecha, Descripción, Monto].
type Report struct {
	Title       string
	Subtitle    string
	TotalLabel  string
	Rows        []ReportRow
	GeneratedAt time.Time
}

// ReportRow fila de la tabla; Number ya incluye el desplazamiento del rango.
type ReportRow struct {
	Number      int
	Item        string
	Date        string
	Description string
	Amount      string
}

// Columnas de la tabla del reporte.
var Columns = []string{"#", "Item", "Fecha", "Descripción", "Monto"}
