package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// CategorySum resume una categoría de caja dentro de la ventana.
type CategorySum struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}

// MonthPoint es un punto de la serie mensual (año, mes, tipo, total).
type MonthPoint struct {
	Year  int
	Month int
	Type  string
	Total decimal.Decimal
}

// FinanceStats es el resumen agregado de caja para una ventana [start, end).
// MonthlyTrend cubre todos los registros del snapshot, sin restricción de
// ventana: alimenta gráficos multi-mes independientes del período pedido.
type FinanceStats struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetIncome          decimal.Decimal
	IncomeByCategory   []CategorySum
	ExpensesByCategory []CategorySum
	MonthlyTrend       []MonthPoint
}

type monthKey struct {
	year  int
	month int
	typ   string
}

// AggregateFinance agrega un snapshot de registros de caja. Los totales y
// desgloses por categoría consideran solo registros con fecha en [start, end);
// la serie mensual agrupa el snapshot completo por (año, mes, tipo) en orden
// cronológico. Agrupación por igualdad exacta de categoría, la vacía incluida.
func AggregateFinance(records []entity.FinanceRecord, start, end time.Time) FinanceStats {
	s := FinanceStats{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	incomeCats := make(map[string]*CategorySum)
	expenseCats := make(map[string]*CategorySum)
	trend := make(map[monthKey]decimal.Decimal)

	for _, r := range records {
		k := monthKey{year: r.Date.Year(), month: int(r.Date.Month()), typ: r.Type}
		trend[k] = trend[k].Add(r.Amount)

		if !InWindow(r.Date, start, end) {
			continue
		}

		switch r.Type {
		case entity.FinanceIngreso:
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
			addCategory(incomeCats, r.Category, r.Amount)
		case entity.FinanceEgreso:
			s.TotalExpenses = s.TotalExpenses.Add(r.Amount)
			addCategory(expenseCats, r.Category, r.Amount)
		}
	}

	s.NetIncome = s.TotalIncome.Sub(s.TotalExpenses)
	s.IncomeByCategory = sortedCategories(incomeCats)
	s.ExpensesByCategory = sortedCategories(expenseCats)

	s.MonthlyTrend = make([]MonthPoint, 0, len(trend))
	for k, total := range trend {
		s.MonthlyTrend = append(s.MonthlyTrend, MonthPoint{
			Year: k.year, Month: k.month, Type: k.typ, Total: total,
		})
	}
	sort.Slice(s.MonthlyTrend, func(i, j int) bool {
		a, b := s.MonthlyTrend[i], s.MonthlyTrend[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Type < b.Type
	})

	return s
}

func addCategory(m map[string]*CategorySum, category string, amount decimal.Decimal) {
	c, ok := m[category]
	if !ok {
		c = &CategorySum{Category: category, Total: decimal.Zero}
		m[category] = c
	}
	c.Total = c.Total.Add(amount)
	c.Count++
}

func sortedCategories(m map[string]*CategorySum) []CategorySum {
	out := make([]CategorySum, 0, len(m))
	for _, c := range m {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
