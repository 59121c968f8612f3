// Package stats contiene los casos de uso de estadísticas: cargan un snapshot
// vía repositorios y delegan el cálculo en los agregadores puros del dominio.
package stats

import (
	"time"

	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
	domstats "github.com/tallersoft/stockcaja/internal/domain/stats"
)

// StatsUseCase resúmenes de inventario y caja. El reloj se inyecta para que
// la resolución de períodos sea determinista en tests.
type StatsUseCase struct {
	partRepo    repository.PartRepository
	financeRepo repository.FinanceRepository
	now         func() time.Time
}

// NewStatsUseCase construye el caso de uso. now suele ser time.Now.
func NewStatsUseCase(
	partRepo repository.PartRepository,
	financeRepo repository.FinanceRepository,
	now func() time.Time,
) *StatsUseCase {
	return &StatsUseCase{partRepo: partRepo, financeRepo: financeRepo, now: now}
}

// PartStats agrega el inventario completo, opcionalmente restringido a una
// bodega o categoría ("all" o vacío = sin restricción).
func (uc *StatsUseCase) PartStats(warehouseID, category string) (*dto.PartStatsResponse, error) {
	filter := repository.PartFilter{
		WarehouseID: normalizeScope(warehouseID),
		Category:    normalizeScope(category),
	}
	parts, err := uc.partRepo.ListAll(filter)
	if err != nil {
		return nil, err
	}

	agg := domstats.AggregateParts(parts)

	byCategory := make([]dto.CategoryBreakdownDTO, 0, len(agg.ByCategory))
	for _, g := range agg.ByCategory {
		byCategory = append(byCategory, dto.CategoryBreakdownDTO{
			ID:         g.Category,
			Count:      g.Count,
			TotalStock: g.TotalStock,
			LowStock:   g.LowStock,
		})
	}
	return &dto.PartStatsResponse{
		TotalParts:      agg.TotalParts,
		LowStockParts:   agg.LowStockParts,
		OutOfStockParts: agg.OutOfStockParts,
		TotalValue:      agg.TotalValue,
		PartsByCategory: byCategory,
	}, nil
}

// FinanceStats agrega la caja para la ventana pedida. period es un token
// day/week/month/year resuelto contra el reloj inyectado; si vienen startDate
// y endDate (días inclusivos), reemplazan al token. La serie mensual siempre
// cubre el historial completo, sin importar la ventana.
func (uc *StatsUseCase) FinanceStats(period string, startDate, endDate *time.Time) (*dto.FinanceStatsResponse, error) {
	if period == "" {
		period = domstats.PeriodMonth
	}

	var start, end time.Time
	if startDate != nil && endDate != nil {
		// Rango explícito: días inclusivos, convertidos a [inicio, fin+1d).
		start = *startDate
		end = endDate.AddDate(0, 0, 1)
	} else {
		var err error
		start, end, err = domstats.ResolvePeriod(period, uc.now())
		if err != nil {
			return nil, err
		}
	}

	records, err := uc.financeRepo.ListAll(repository.FinanceFilter{})
	if err != nil {
		return nil, err
	}

	agg := domstats.AggregateFinance(records, start, end)

	trend := make([]dto.MonthPointDTO, 0, len(agg.MonthlyTrend))
	for _, p := range agg.MonthlyTrend {
		trend = append(trend, dto.MonthPointDTO{
			Year: p.Year, Month: p.Month, Type: p.Type, Total: p.Total,
		})
	}
	return &dto.FinanceStatsResponse{
		Period:             period,
		StartDate:          start.Format("2006-01-02"),
		EndDate:            end.Format("2006-01-02"),
		TotalIncome:        agg.TotalIncome,
		TotalExpenses:      agg.TotalExpenses,
		NetIncome:          agg.NetIncome,
		IncomeByCategory:   toCategorySums(agg.IncomeByCategory),
		ExpensesByCategory: toCategorySums(agg.ExpensesByCategory),
		MonthlyTrend:       trend,
	}, nil
}

func toCategorySums(in []domstats.CategorySum) []dto.CategorySumDTO {
	out := make([]dto.CategorySumDTO, 0, len(in))
	for _, c := range in {
		out = append(out, dto.CategorySumDTO{ID: c.Category, Total: c.Total, Count: c.Count})
	}
	return out
}

func normalizeScope(v string) string {
	if v == repository.FilterAll {
		return ""
	}
	return v
}
