package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/reports"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// ReportHandler genera reportes descargables de inventario y caja (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Description  Snapshot del inventario con resumen agregado y detalle por
// @Description  repuesto. Acepta los mismos filtros que el listado de
// @Description  repuestos, sin paginación.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        category      query  string  false  "Categoría exacta o all"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        stock_status  query  string  false  "low_stock | out_of_stock | normal | all"
// @Param        search        query  string  false  "Texto sobre nombre, descripción y número de parte"
// @Success      200  {file}  binary
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.InventoryPDF(partReportFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, data)
}

// InventoryCSV godoc
// @Summary      Reporte de inventario en CSV
// @Description  Mismo contenido que el PDF, en CSV separado por punto y coma
// @Description  listo para Excel.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        category      query  string  false  "Categoría exacta o all"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        stock_status  query  string  false  "low_stock | out_of_stock | normal | all"
// @Param        search        query  string  false  "Texto sobre nombre, descripción y número de parte"
// @Success      200  {file}  binary
// @Router       /api/reports/inventory/csv [get]
func (h *ReportHandler) InventoryCSV(c *fiber.Ctx) error {
	data, filename, err := h.uc.InventoryCSV(partReportFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "text/csv", filename, data)
}

// FinanceCSV godoc
// @Summary      Export de registros de caja en CSV
// @Description  Exporta los registros que cumplen el filtro, sin paginación,
// @Description  más reciente primero.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        type            query  string  false  "ingreso | egreso | all"
// @Param        category        query  string  false  "Categoría exacta"
// @Param        payment_method  query  string  false  "Método de pago"
// @Param        start_date      query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date        query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/finanzas/csv [get]
func (h *ReportHandler) FinanceCSV(c *fiber.Ctx) error {
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
	}
	data, filename, err := h.uc.FinanceCSV(filter)
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "text/csv", filename, data)
}

func partReportFilter(c *fiber.Ctx) repository.PartFilter {
	return repository.PartFilter{
		Category:    c.Query("category"),
		WarehouseID: c.Query("warehouse_id"),
		StockStatus: c.Query("stock_status"),
		Search:      c.Query("search"),
	}
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
