package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/parts"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// MovementHandler maneja el listado global de movimientos (protegido).
// El registro de movimientos vive bajo /parts/{id}/movements.
type MovementHandler struct {
	uc *parts.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *parts.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Description  Listado global paginado, más reciente primero. Fechas sobre
// @Description  la fecha de negocio del movimiento.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        part_id     query  string  false  "Repuesto"
// @Param        type        query  string  false  "entrada | salida | ajuste | transferencia | all"
// @Param        search      query  string  false  "Texto sobre motivo y referencia"
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	filter := repository.MovementFilter{
		PartID:   c.Query("part_id"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
		DateFrom: from,
		DateTo:   to,
		Page:     parsePage(c),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
