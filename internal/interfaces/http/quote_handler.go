package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/application/quoting"
	"github.com/jhoicas/projecost-api/internal/domain"
)

// QuoteHandler maneja el ciclo de vida de las cotizaciones. La creación admite
// peticiones anónimas (OptionalAuthMiddleware en el router); el resto requiere
// token.
type QuoteHandler struct {
	createUC *quoting.CreateQuoteUseCase
	quoteUC  *quoting.QuoteUseCase
	pdfUC    *quoting.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(createUC *quoting.CreateQuoteUseCase, quoteUC *quoting.QuoteUseCase, pdfUC *quoting.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{createUC: createUC, quoteUC: quoteUC, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Cotizar un proyecto (anónimo o autenticado)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "servicio, tier, complejidad y datos del cliente"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ServiceID == "" || in.ClientName == "" || in.ClientEmail == "" || in.ClientCountry == "" || in.SelectedTier == "" || in.Complexity == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_id, client_name, client_email, client_country, selected_tier y complexity son requeridos"})
	}
	out, err := h.createUC.Execute(CallerFromCtx(c), in)
	if err != nil {
		return quoteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones visibles para el usuario
// @Description  Admin ve todas; freelancer/agency las de sus servicios; client las propias.
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.QuoteListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	out, err := h.quoteUC.List(CallerFromCtx(c))
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una cotización
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.quoteUC.GetByID(CallerFromCtx(c), c.Params("id"))
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una cotización
// @Description  Transiciones válidas: pending→accepted|rejected, accepted→completed.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                        true  "ID de la cotización"
// @Param        body  body  dto.UpdateQuoteStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateQuoteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.quoteUC.UpdateStatus(CallerFromCtx(c), c.Params("id"), in.Status)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una cotización (proveedor dueño o admin)
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cotización"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.quoteUC.Delete(CallerFromCtx(c), c.Params("id")); err != nil {
		return quoteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar la cotización en PDF
// @Tags         quotes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadQuotePDF(c.Context(), CallerFromCtx(c), c.Params("id"))
	if err != nil {
		return quoteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// quoteError mapea errores de dominio a respuestas HTTP. Se usa errors.Is
// porque el caso de uso de creación envuelve ErrNotFound con contexto.
func quoteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere autenticación"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene acceso a esta cotización"})
	}
	if errors.Is(err, domain.ErrInvalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
