package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersoft/stockcaja/internal/application/stats"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// Los stubs embeben el puerto: solo implementan lo que el caso de uso llama.

type stubPartRepo struct {
	repository.PartRepository
	parts      []entity.Part
	lastFilter repository.PartFilter
}

func (s *stubPartRepo) ListAll(filter repository.PartFilter) ([]entity.Part, error) {
	s.lastFilter = filter
	return s.parts, nil
}

type stubFinanceRepo struct {
	repository.FinanceRepository
	records []entity.FinanceRecord
}

func (s *stubFinanceRepo) ListAll(_ repository.FinanceFilter) ([]entity.FinanceRecord, error) {
	return s.records, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 25, 15, 0, 0, 0, time.UTC)
}

func ingreso(date time.Time, category string, amount int64) entity.FinanceRecord {
	return entity.FinanceRecord{
		Type: entity.FinanceIngreso, Category: category,
		Amount: decimal.NewFromInt(amount), Date: date,
	}
}

func egreso(date time.Time, category string, amount int64) entity.FinanceRecord {
	return entity.FinanceRecord{
		Type: entity.FinanceEgreso, Category: category,
		Amount: decimal.NewFromInt(amount), Date: date,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestPartStats_AgregaElSnapshot(t *testing.T) {
	partRepo := &stubPartRepo{parts: []entity.Part{
		{Category: "Filtros", CurrentStock: 10, MinimumStock: 2, UnitPrice: decimal.NewFromInt(5000)},
		{Category: "Filtros", CurrentStock: 2, MinimumStock: 5, UnitPrice: decimal.NewFromInt(3000)},
		{Category: "Frenos", CurrentStock: 0, MinimumStock: 1, UnitPrice: decimal.NewFromInt(20000)},
	}}
	uc := stats.NewStatsUseCase(partRepo, &stubFinanceRepo{}, fixedNow)

	got, err := uc.PartStats("", "")
	require.NoError(t, err)

	assert.Equal(t, int64(3), got.TotalParts)
	assert.Equal(t, int64(1), got.LowStockParts)
	assert.Equal(t, int64(1), got.OutOfStockParts)
	// 10*5000 + 2*3000 + 0*20000
	assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(56000)), "valor total %s", got.TotalValue)

	require.Len(t, got.PartsByCategory, 2)
	filtros := got.PartsByCategory[0]
	assert.Equal(t, "Filtros", filtros.ID)
	assert.Equal(t, int64(2), filtros.Count)
	assert.Equal(t, int64(12), filtros.TotalStock)
	assert.Equal(t, int64(1), filtros.LowStock)
}

func TestPartStats_AllEquivaleASinFiltro(t *testing.T) {
	partRepo := &stubPartRepo{}
	uc := stats.NewStatsUseCase(partRepo, &stubFinanceRepo{}, fixedNow)

	_, err := uc.PartStats("all", "all")
	require.NoError(t, err)

	assert.Empty(t, partRepo.lastFilter.WarehouseID, `"all" no restringe la bodega`)
	assert.Empty(t, partRepo.lastFilter.Category, `"all" no restringe la categoría`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caja: resolución de ventana y agregados.
// ──────────────────────────────────────────────────────────────────────────────

func TestFinanceStats_RangoExplicitoEsInclusivo(t *testing.T) {
	financeRepo := &stubFinanceRepo{records: []entity.FinanceRecord{
		ingreso(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC), "Venta de repuestos", 100),
		ingreso(time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC), "Venta de repuestos", 50),
		ingreso(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "Venta de repuestos", 999),
	}}
	uc := stats.NewStatsUseCase(&stubPartRepo{}, financeRepo, fixedNow)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	got, err := uc.FinanceStats("", &start, &end)
	require.NoError(t, err)

	// El 31 de marzo entra completo; el 1 de abril queda fuera.
	assert.True(t, got.TotalIncome.Equal(decimal.NewFromInt(150)), "ingresos %s", got.TotalIncome)

	// La serie mensual cubre el snapshot completo, abril incluido.
	require.Len(t, got.MonthlyTrend, 2)
	assert.Equal(t, 4, got.MonthlyTrend[1].Month)
	assert.True(t, got.MonthlyTrend[1].Total.Equal(decimal.NewFromInt(999)))
}

func TestFinanceStats_PeriodoPorDefectoEsMes(t *testing.T) {
	financeRepo := &stubFinanceRepo{records: []entity.FinanceRecord{
		ingreso(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), "Venta de repuestos", 300),
		egreso(time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC), "Arriendo", 120),
		ingreso(time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), "Venta de repuestos", 777),
	}}
	uc := stats.NewStatsUseCase(&stubPartRepo{}, financeRepo, fixedNow)

	got, err := uc.FinanceStats("", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "month", got.Period)
	assert.Equal(t, "2026-08-01", got.StartDate)
	assert.Equal(t, "2026-09-01", got.EndDate)

	// Julio queda fuera de los totales del mes en curso.
	assert.True(t, got.TotalIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, got.TotalExpenses.Equal(decimal.NewFromInt(120)))
	assert.True(t, got.NetIncome.Equal(decimal.NewFromInt(180)))

	require.Len(t, got.IncomeByCategory, 1)
	assert.Equal(t, "Venta de repuestos", got.IncomeByCategory[0].ID)
	assert.Equal(t, int64(1), got.IncomeByCategory[0].Count)
}

func TestFinanceStats_PeriodoInvalidoRechazado(t *testing.T) {
	uc := stats.NewStatsUseCase(&stubPartRepo{}, &stubFinanceRepo{}, fixedNow)

	_, err := uc.FinanceStats("quarter", nil, nil)
	assert.True(t, domain.IsValidation(err))
}
