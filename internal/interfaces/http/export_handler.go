package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/export"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/blobstore"
)

const pdfContentType = "application/pdf"

// ExportHandler modales de exportación a PDF de los gastos de un cliente.
type ExportHandler struct {
	base
	byRange *export.RangeExportUseCase
	byDate  *export.DateRangeExportUseCase
	docs    *blobstore.Store
}

// NewExportHandler construye el handler.
func NewExportHandler(byRange *export.RangeExportUseCase, byDate *export.DateRangeExportUseCase, docs *blobstore.Store, b base) *ExportHandler {
	return &ExportHandler{base: b, byRange: byRange, byDate: byDate, docs: docs}
}

// RangeModal GET /customers/:id/export/range?max=N: por defecto exporta 1..N.
func (h *ExportHandler) RangeModal(c *fiber.Ctx) error {
	id := c.Params("id")
	maxIndex := c.QueryInt("max", 0)
	req := dto.RangeExportRequest{Start: "1", Max: strconv.Itoa(maxIndex)}
	if maxIndex > 0 {
		req.End = strconv.Itoa(maxIndex)
	}
	return h.views.Render(c, "range_modal", fiber.Map{"Action": "/customers/" + id + "/export/range", "Form": req})
}

// Range POST /customers/:id/export/range. Un rango inválido vuelve al modal sin pedir datos.
func (h *ExportHandler) Range(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.RangeExportRequest
	data := fiber.Map{"Action": "/customers/" + id + "/export/range"}
	if err := c.BodyParser(&req); err != nil {
		data["Form"] = req
		return h.badForm(c, "range_modal", data, err)
	}
	res, err := h.byRange.Export(c.UserContext(), id, req)
	if err != nil {
		data["Form"] = req
		return h.modalFailed(c, "range_modal", data, err, "No se pudo generar el PDF")
	}
	return h.publish(c, res)
}

// DatesModal GET /customers/:id/export/dates.
func (h *ExportHandler) DatesModal(c *fiber.Ctx) error {
	id := c.Params("id")
	form := dto.DateRangeExportRequest{StartDate: today(), EndDate: today()}
	return h.views.Render(c, "dates_modal", fiber.Map{"Action": "/customers/" + id + "/export/dates", "Form": form})
}

// Dates POST /customers/:id/export/dates.
func (h *ExportHandler) Dates(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.DateRangeExportRequest
	data := fiber.Map{"Action": "/customers/" + id + "/export/dates"}
	if err := c.BodyParser(&req); err != nil {
		data["Form"] = req
		return h.badForm(c, "dates_modal", data, err)
	}
	res, err := h.byDate.Export(c.UserContext(), id, req)
	if err != nil {
		data["Form"] = req
		return h.modalFailed(c, "dates_modal", data, err, "No se pudo generar el PDF")
	}
	return h.publish(c, res)
}

// publish guarda el PDF en el almacén transitorio y pide al navegador que lo abra.
func (h *ExportHandler) publish(c *fiber.Ctx, res *dto.ExportResult) error {
	docID := h.docs.Put(res.Filename, pdfContentType, res.Content)
	h.log.Info().
		Str("document", docID).
		Str("filename", res.Filename).
		Int("rows", res.Rows).
		Msg("PDF generado")
	return NewHTMXResponse().
		CloseModal().
		OpenDocument("/documents/" + docID).
		Success("PDF generado").
		Send(c)
}
