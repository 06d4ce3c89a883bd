package http

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc   *usecase.ProductUseCase
	errs *ErrorNormalizer
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, errs *ErrorNormalizer) *ProductHandler {
	return &ProductHandler{uc: uc, errs: errs}
}

// List godoc
// @Summary      Listar productos
// @Description  Catálogo completo, más recientes primero. Público.
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListEnvelope
// @Failure      500  {object}  dto.ErrorEnvelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err, "Error fetching products")
	}
	return c.Status(fiber.StatusOK).JSON(dto.OK(out))
}

// Create godoc
// @Summary      Agregar producto
// @Description  Requiere Bearer token de Supabase y rol admin o editor.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "categoria, nombre, precio, imagen"
// @Success      201   {object}  dto.ProductEnvelope
// @Failure      400   {object}  dto.ErrorEnvelope
// @Failure      401   {object}  dto.ErrorEnvelope
// @Failure      500   {object}  dto.ErrorEnvelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return domain.ErrInvalidToken
	}

	// Un cuerpo vacío equivale a {} y termina en "Missing required fields".
	var in dto.CreateProductRequest
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, &in); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidBody, err)
		}
	}

	out, err := h.uc.Create(c.UserContext(), identity.ID, in)
	if err != nil {
		if _, _, ok := clientError(err); ok {
			return err
		}
		return h.errs.Respond(c, err, "Error adding product")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}
