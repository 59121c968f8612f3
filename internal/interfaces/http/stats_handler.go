package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/stats"
	"github.com/tallersoft/stockcaja/internal/domain"
)

// StatsHandler maneja las estadísticas de inventario y caja (protegido).
type StatsHandler struct {
	uc *stats.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// PartStats godoc
// @Summary      Estadísticas de inventario
// @Description  Conteos, valor total y desglose por categoría del inventario,
// @Description  opcionalmente restringido a una bodega o categoría.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Bodega (vacío o all = todas)"
// @Param        category      query  string  false  "Categoría (vacío o all = todas)"
// @Success      200  {object}  dto.PartStatsResponse
// @Router       /api/parts/stats [get]
func (h *StatsHandler) PartStats(c *fiber.Ctx) error {
	out, err := h.uc.PartStats(c.Query("warehouse_id"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FinanceStats godoc
// @Summary      Estadísticas de caja
// @Description  Totales de ingresos/egresos, desgloses por categoría y serie
// @Description  mensual. La ventana sale del period (day/week/month/year); si
// @Description  vienen start_date y end_date (ambos), reemplazan al period.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "day | week | month | year"  default(month)
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200  {object}  dto.FinanceStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finanzas/stats [get]
func (h *StatsHandler) FinanceStats(c *fiber.Ctx) error {
	// Aquí las fechas van tal cual: el caso de uso convierte el par
	// inclusivo a ventana semiabierta por su cuenta.
	start, err := parseDateParam(c, "start_date")
	if err != nil {
		return respondError(c, err)
	}
	end, err := parseDateParam(c, "end_date")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.FinanceStats(c.Query("period"), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseDateParam(c *fiber.Ctx, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, domain.NewValidationf("%s inválida: %q (formato YYYY-MM-DD)", name, v)
	}
	return &t, nil
}
