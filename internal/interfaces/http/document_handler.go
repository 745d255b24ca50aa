package http

import (
	"mime"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/blobstore"
)

// DocumentHandler sirve los PDF generados mientras sigan en el almacén.
type DocumentHandler struct {
	docs *blobstore.Store
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(docs *blobstore.Store) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

// Open GET /documents/:id
// @Summary      Documento PDF generado
// @Description  Devuelve el PDF en línea. El documento se libera poco después de la primera apertura.
// @Tags         documents
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /documents/{id} [get]
func (h *DocumentHandler) Open(c *fiber.Ctx) error {
	doc, ok := h.docs.Open(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el documento ya no está disponible"})
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": doc.Filename}))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(doc.Content)
}
