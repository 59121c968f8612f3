package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/usecase"
)

// CatalogHandler expone las listas de valores para la UI (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Catalogs godoc
// @Summary      Catálogos de la aplicación
// @Description  Unidades, tipos de movimiento, categorías sugeridas, métodos
// @Description  de pago y frecuencias. Las categorías y métodos son solo
// @Description  sugerencias: el backend no valida pertenencia.
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogsResponse
// @Router       /api/catalogs [get]
func (h *CatalogHandler) Catalogs(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalogs())
}
