package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/stats"
)

var (
	marzo      = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	abril      = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	dentro     = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	fueraAntes = time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
)

func ingreso(cat string, monto float64, fecha time.Time) entity.FinanceRecord {
	return entity.FinanceRecord{
		Type: entity.FinanceIngreso, Category: cat,
		Amount: decimal.NewFromFloat(monto), Date: fecha,
	}
}

func egreso(cat string, monto float64, fecha time.Time) entity.FinanceRecord {
	return entity.FinanceRecord{
		Type: entity.FinanceEgreso, Category: cat,
		Amount: decimal.NewFromFloat(monto), Date: fecha,
	}
}

func TestAggregateFinance_TotalesDeLaVentana(t *testing.T) {
	records := []entity.FinanceRecord{
		ingreso("Venta de repuestos", 1000, dentro),
		ingreso("Servicio tecnico", 500, dentro),
		egreso("Arriendo", 300, dentro),
		ingreso("Venta de repuestos", 9999, fueraAntes), // fuera de la ventana
	}

	got := stats.AggregateFinance(records, marzo, abril)

	assert.True(t, got.TotalIncome.Equal(decimal.NewFromInt(1500)), "ingresos: %s", got.TotalIncome)
	assert.True(t, got.TotalExpenses.Equal(decimal.NewFromInt(300)), "egresos: %s", got.TotalExpenses)
	assert.True(t, got.NetIncome.Equal(decimal.NewFromInt(1200)), "neto = ingresos - egresos")
}

func TestAggregateFinance_BordesDeVentanaSemiabiertos(t *testing.T) {
	records := []entity.FinanceRecord{
		ingreso("Ventas", 100, marzo),                    // justo en el inicio: entra
		ingreso("Ventas", 50, abril),                     // justo en el fin: queda fuera
		ingreso("Ventas", 25, abril.Add(-time.Second)),   // último instante: entra
	}

	got := stats.AggregateFinance(records, marzo, abril)
	assert.True(t, got.TotalIncome.Equal(decimal.NewFromInt(125)),
		"inicio inclusivo, fin exclusivo: 100+25, obtuve %s", got.TotalIncome)
}

func TestAggregateFinance_DesglosePorCategoria(t *testing.T) {
	records := []entity.FinanceRecord{
		ingreso("Venta de repuestos", 800, dentro),
		ingreso("Venta de repuestos", 200, dentro),
		ingreso("Servicio tecnico", 150, dentro),
		egreso("Nomina", 400, dentro),
	}

	got := stats.AggregateFinance(records, marzo, abril)

	require.Len(t, got.IncomeByCategory, 2)
	assert.Equal(t, "Venta de repuestos", got.IncomeByCategory[0].Category,
		"las categorías se ordenan por total descendente")
	assert.True(t, got.IncomeByCategory[0].Total.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(2), got.IncomeByCategory[0].Count)

	require.Len(t, got.ExpensesByCategory, 1)
	assert.Equal(t, "Nomina", got.ExpensesByCategory[0].Category)
}

func TestAggregateFinance_CategoriaVaciaFormaGrupo(t *testing.T) {
	records := []entity.FinanceRecord{
		ingreso("", 75, dentro),
	}

	got := stats.AggregateFinance(records, marzo, abril)
	require.Len(t, got.IncomeByCategory, 1)
	assert.Equal(t, "", got.IncomeByCategory[0].Category)
}

// TestAggregateFinance_SerieMensualIgnoraVentana verifica que la serie mensual
// cubre todo el snapshot aunque la ventana pedida sea solo marzo.
func TestAggregateFinance_SerieMensualIgnoraVentana(t *testing.T) {
	records := []entity.FinanceRecord{
		ingreso("Ventas", 100, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		ingreso("Ventas", 200, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		egreso("Arriendo", 80, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
		ingreso("Ventas", 300, dentro),
		egreso("Arriendo", 90, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := stats.AggregateFinance(records, marzo, abril)

	require.Len(t, got.MonthlyTrend, 4)

	// Orden cronológico: dic-2023, ene-2024 (egreso antes que ingreso por tipo), mar-2024.
	assert.Equal(t, 2023, got.MonthlyTrend[0].Year)
	assert.Equal(t, 12, got.MonthlyTrend[0].Month)
	assert.Equal(t, entity.FinanceEgreso, got.MonthlyTrend[0].Type)

	assert.Equal(t, 1, got.MonthlyTrend[1].Month)
	assert.Equal(t, entity.FinanceEgreso, got.MonthlyTrend[1].Type)

	assert.Equal(t, 1, got.MonthlyTrend[2].Month)
	assert.Equal(t, entity.FinanceIngreso, got.MonthlyTrend[2].Type)
	assert.True(t, got.MonthlyTrend[2].Total.Equal(decimal.NewFromInt(300)),
		"enero acumula 100+200, obtuve %s", got.MonthlyTrend[2].Total)

	assert.Equal(t, 3, got.MonthlyTrend[3].Month)
}

func TestAggregateFinance_SnapshotVacio(t *testing.T) {
	got := stats.AggregateFinance(nil, marzo, abril)

	assert.True(t, got.TotalIncome.IsZero())
	assert.True(t, got.TotalExpenses.IsZero())
	assert.True(t, got.NetIncome.IsZero())
	assert.Empty(t, got.IncomeByCategory)
	assert.Empty(t, got.MonthlyTrend)
}
