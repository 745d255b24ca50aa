package dto

// RangeExportRequest rango por índice (1-based, inclusivo) del modal de exportación.
// Max es el total conocido del listado; 0 = desconocido.
type RangeExportRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
	Max   string `form:"max"`
}

// DateRangeExportRequest rango de fechas (YYYY-MM-DD, inclusivo) del modal de exportación.
type DateRangeExportRequest struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ExportResult documento generado.
type ExportResult struct {
	Content  []byte
	Filename string
	Rows     int
}
