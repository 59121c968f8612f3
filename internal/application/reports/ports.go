package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// InventoryReportLine es una fila del reporte de inventario con la bodega
// ya resuelta a nombre y el estado de stock derivado.
type InventoryReportLine struct {
	Part          entity.Part
	WarehouseName string
	Status        string
	StockValue    decimal.Decimal // current_stock × unit_price
}

// InventoryReport es el snapshot listo para render (PDF o CSV).
type InventoryReport struct {
	GeneratedAt time.Time
	Lines       []InventoryReportLine
	TotalParts  int64
	LowStock    int64
	OutOfStock  int64
	TotalValue  decimal.Decimal
}

// InventoryPDFGenerator puerto de render PDF del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(report *InventoryReport) ([]byte, error)
}

// CSVExporter puerto de export CSV. La implementación decide la codificación
// de salida (UTF-8 o Windows-1252 para Excel en español).
type CSVExporter interface {
	InventoryCSV(report *InventoryReport) ([]byte, error)
	FinanceCSV(records []entity.FinanceRecord) ([]byte, error)
}
