package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/application/usecase"
	"github.com/jhoicas/projecost-api/internal/domain"
)

// CountryHandler maneja el dato de referencia de países. Lectura pública;
// mutaciones restringidas a admin vía RequireRole en el router.
type CountryHandler struct {
	uc *usecase.CountryUseCase
}

// NewCountryHandler construye el handler.
func NewCountryHandler(uc *usecase.CountryUseCase) *CountryHandler {
	return &CountryHandler{uc: uc}
}

// List godoc
// @Summary      Listar países con su multiplicador
// @Tags         countries
// @Produce      json
// @Success      200  {object}  dto.CountryListResponse
// @Router       /api/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un país
// @Tags         countries
// @Produce      json
// @Param        id   path      string  true  "ID del país"
// @Success      200  {object}  dto.CountryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/countries/{id} [get]
func (h *CountryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "país no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear país (solo admin)
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCountryRequest  true  "país"
// @Success      201   {object}  dto.CountryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/countries [post]
func (h *CountryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCountryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(CallerFromCtx(c), in)
	if err != nil {
		return countryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar país (solo admin)
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del país"
// @Param        body  body  dto.UpdateCountryRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.CountryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/countries/{id} [put]
func (h *CountryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCountryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(CallerFromCtx(c), c.Params("id"), in)
	if err != nil {
		return countryError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "país no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar país (solo admin)
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del país"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/countries/{id} [delete]
func (h *CountryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CallerFromCtx(c), c.Params("id")); err != nil {
		return countryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// countryError mapea errores de dominio a respuestas HTTP. Se usa errors.Is
// porque Country.Validate envuelve los sentinelas con contexto.
func countryError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin puede gestionar países"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un país con ese código o nombre"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "país no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
