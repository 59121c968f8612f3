package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/application/finance"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// FinanceHandler maneja las peticiones HTTP para registros de caja (protegido).
type FinanceHandler struct {
	uc *finance.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de caja
// @Description  Registra un ingreso o egreso. Si el registro es recurrente,
// @Description  la programación se valida y almacena; las ocurrencias futuras
// @Description  las genera un scheduler externo.
// @Tags         finanzas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinanceRecordRequest  true  "Datos del registro"
// @Success      201   {object}  dto.FinanceRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finanzas [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token inválido")
	}
	var in dto.CreateFinanceRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Type == "" || in.Description == "" {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", "type y description son requeridos")
	}
	out, err := h.uc.Create(userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de caja por ID
// @Tags         finanzas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.FinanceRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finanzas/{id} [get]
func (h *FinanceHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar registros de caja
// @Description  Listado paginado, más reciente primero. Fechas sobre la fecha
// @Description  de negocio del registro.
// @Tags         finanzas
// @Security     Bearer
// @Produce      json
// @Param        type            query  string  false  "ingreso | egreso | all"
// @Param        category        query  string  false  "Categoría exacta"
// @Param        payment_method  query  string  false  "Método de pago"
// @Param        search          query  string  false  "Texto sobre descripción y referencia"
// @Param        start_date      query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date        query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        page            query  int     false  "Página"  default(1)
// @Param        limit           query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.FinanceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finanzas [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	filter := repository.FinanceFilter{
		Type:          c.Query("type"),
		Category:      c.Query("category"),
		PaymentMethod: c.Query("payment_method"),
		Search:        c.Query("search"),
		DateFrom:      from,
		DateTo:        to,
		Page:          parsePage(c),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar registro de caja
// @Description  Patch parcial; las reglas se revalidan sobre el resultado.
// @Tags         finanzas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateFinanceRecordRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FinanceRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finanzas/{id} [put]
func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	var in dto.UpdateFinanceRecordRequest
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
// @Summary      Eliminar registro de caja
// @Tags         finanzas
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finanzas/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
