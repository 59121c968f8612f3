package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/application/parts"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// PartHandler maneja las peticiones HTTP para Part (protegido).
type PartHandler struct {
	uc    *parts.PartUseCase
	movUC *parts.MovementUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *parts.PartUseCase, movUC *parts.MovementUseCase) *PartHandler {
	return &PartHandler{uc: uc, movUC: movUC}
}

// Create godoc
// @Summary      Crear repuesto
// @Description  Crea el repuesto con su stock inicial; el saldo inicial queda
// @Description  registrado como primer movimiento del historial.
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token inválido")
	}
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.WarehouseID == "" {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", "name y warehouse_id son requeridos")
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar repuestos
// @Description  Filtros combinados con AND; category y stock_status aceptan
// @Description  "all" como comodín. Fechas sobre la fecha de creación.
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        category      query  string  false  "Categoría exacta o all"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        stock_status  query  string  false  "low_stock | out_of_stock | normal | all"
// @Param        search        query  string  false  "Texto sobre nombre, descripción y número de parte"
// @Param        start_date    query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date      query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        page          query  int     false  "Página"  default(1)
// @Param        limit         query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.PartListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	filter := repository.PartFilter{
		Category:    c.Query("category"),
		WarehouseID: c.Query("warehouse_id"),
		StockStatus: c.Query("stock_status"),
		Search:      c.Query("search"),
		DateFrom:    from,
		DateTo:      to,
		Page:        parsePage(c),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar repuesto
// @Description  Patch parcial de campos descriptivos y umbrales. El stock no
// @Description  se toca por aquí: solo cambia vía movimientos.
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdatePartRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar repuesto
// @Description  Elimina el repuesto y todo su historial de movimientos.
// @Tags         parts
// @Security     Bearer
// @Param        id  path  string  true  "ID del repuesto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyMovement godoc
// @Summary      Aplicar movimiento de stock
// @Description  Registra un movimiento sobre el repuesto y actualiza su stock
// @Description  en un solo paso atómico. Para entrada/salida/transferencia,
// @Description  quantity es magnitud (> 0); para ajuste, el nivel objetivo.
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.ApplyMovementRequest  true  "type, quantity, reason, reference"
// @Success      201   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id}/movements [post]
func (h *PartHandler) ApplyMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token inválido")
	}
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.movUC.Apply(c.Context(), id, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de un repuesto
// @Description  Historial completo en orden de aplicación, sin paginar.
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id}/movements [get]
func (h *PartHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	items, err := h.movUC.History(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementHistoryResponse{PartID: id, Items: items})
}
