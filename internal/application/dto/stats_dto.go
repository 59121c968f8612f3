package dto

import "github.com/shopspring/decimal"

// Los DTOs de estadísticas conservan las claves del payload original del
// dashboard (camelCase y "_id" como clave de grupo), porque el frontend
// consume estas formas tal cual.

// CategoryBreakdownDTO desglose de una categoría de repuestos.
type CategoryBreakdownDTO struct {
	ID         string `json:"_id"` // clave del grupo: la categoría
	Count      int64  `json:"count"`
	TotalStock int64  `json:"totalStock"`
	LowStock   int64  `json:"lowStock"`
}

// PartStatsResponse resumen agregado del inventario.
type PartStatsResponse struct {
	TotalParts      int64                  `json:"totalParts"`
	LowStockParts   int64                  `json:"lowStockParts"`
	OutOfStockParts int64                  `json:"outOfStockParts"`
	TotalValue      decimal.Decimal        `json:"totalValue"`
	PartsByCategory []CategoryBreakdownDTO `json:"partsByCategory"`
}

// CategorySumDTO suma y conteo de una categoría de caja.
type CategorySumDTO struct {
	ID    string          `json:"_id"` // clave del grupo: la categoría
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// MonthPointDTO punto de la serie mensual.
type MonthPointDTO struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// FinanceStatsResponse resumen de caja para la ventana pedida.
type FinanceStatsResponse struct {
	Period             string           `json:"period"`
	StartDate          string           `json:"startDate"`
	EndDate            string           `json:"endDate"`
	TotalIncome        decimal.Decimal  `json:"totalIncome"`
	TotalExpenses      decimal.Decimal  `json:"totalExpenses"`
	NetIncome          decimal.Decimal  `json:"netIncome"`
	IncomeByCategory   []CategorySumDTO `json:"incomeByCategory"`
	ExpensesByCategory []CategorySumDTO `json:"expensesByCategory"`
	MonthlyTrend       []MonthPointDTO  `json:"monthlyTrend"`
}
