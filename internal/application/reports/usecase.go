package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/domain/ledger"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
	domstats "github.com/tallersoft/stockcaja/internal/domain/stats"
)

// ReportUseCase arma los reportes descargables: inventario en PDF o CSV y
// registros de caja en CSV. Trabaja siempre sobre el snapshot completo que
// pasa el filtro, sin paginar.
type ReportUseCase struct {
	partRepo      repository.PartRepository
	financeRepo   repository.FinanceRepository
	warehouseRepo repository.WarehouseRepository
	pdfGen        InventoryPDFGenerator
	exporter      CSVExporter
	now           func() time.Time // nil = time.Now; inyectable en tests
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	partRepo repository.PartRepository,
	financeRepo repository.FinanceRepository,
	warehouseRepo repository.WarehouseRepository,
	pdfGen InventoryPDFGenerator,
	exporter CSVExporter,
) *ReportUseCase {
	return &ReportUseCase{
		partRepo:      partRepo,
		financeRepo:   financeRepo,
		warehouseRepo: warehouseRepo,
		pdfGen:        pdfGen,
		exporter:      exporter,
	}
}

func (uc *ReportUseCase) clock() time.Time {
	if uc.now != nil {
		return uc.now()
	}
	return time.Now()
}

// InventoryPDF genera el reporte de inventario en PDF.
// Retorna (bytes, nombre de archivo, error).
func (uc *ReportUseCase) InventoryPDF(filter repository.PartFilter) ([]byte, string, error) {
	report, err := uc.buildInventoryReport(filter)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGen.GenerateInventoryPDF(report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación de PDF fallida: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", report.GeneratedAt.Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// InventoryCSV genera el reporte de inventario en CSV.
func (uc *ReportUseCase) InventoryCSV(filter repository.PartFilter) ([]byte, string, error) {
	report, err := uc.buildInventoryReport(filter)
	if err != nil {
		return nil, "", err
	}
	csvBytes, err := uc.exporter.InventoryCSV(report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: export CSV fallido: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s.csv", report.GeneratedAt.Format("2006-01-02"))
	return csvBytes, filename, nil
}

// FinanceCSV genera el export CSV de registros de caja.
func (uc *ReportUseCase) FinanceCSV(filter repository.FinanceFilter) ([]byte, string, error) {
	records, err := uc.financeRepo.ListAll(filter)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar registros: %w", err)
	}
	csvBytes, err := uc.exporter.FinanceCSV(records)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: export CSV fallido: %w", err)
	}
	filename := fmt.Sprintf("finanzas_%s.csv", uc.clock().Format("2006-01-02"))
	return csvBytes, filename, nil
}

// buildInventoryReport arma el snapshot: repuestos filtrados, bodegas
// resueltas a nombre y agregados del inventario.
func (uc *ReportUseCase) buildInventoryReport(filter repository.PartFilter) (*InventoryReport, error) {
	parts, err := uc.partRepo.ListAll(filter)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar repuestos: %w", err)
	}
	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar bodegas: %w", err)
	}
	names := make(map[string]string, len(warehouses))
	for _, w := range warehouses {
		names[w.ID] = w.Name
	}

	agg := domstats.AggregateParts(parts)

	lines := make([]InventoryReportLine, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, InventoryReportLine{
			Part:          p,
			WarehouseName: names[p.WarehouseID],
			Status:        ledger.StatusOf(p.CurrentStock, p.MinimumStock),
			StockValue:    p.UnitPrice.Mul(decimal.NewFromInt(p.CurrentStock)),
		})
	}

	return &InventoryReport{
		GeneratedAt: uc.clock(),
		Lines:       lines,
		TotalParts:  agg.TotalParts,
		LowStock:    agg.LowStockParts,
		OutOfStock:  agg.OutOfStockParts,
		TotalValue:  agg.TotalValue,
	}, nil
}
