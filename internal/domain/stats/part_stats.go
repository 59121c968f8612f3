package stats

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/ledger"
)

// CategoryBreakdown resume una categoría de repuestos.
// LowStock cuenta los repuestos con estado distinto de normal (bajos o agotados).
type CategoryBreakdown struct {
	Category   string
	Count      int64
	TotalStock int64
	LowStock   int64
}

// PartStats es el resumen agregado del inventario.
type PartStats struct {
	TotalParts      int64
	LowStockParts   int64
	OutOfStockParts int64
	TotalValue      decimal.Decimal
	ByCategory      []CategoryBreakdown
}

// AggregateParts agrega un snapshot de repuestos. TotalValue suma
// currentStock * unitPrice (precio desconocido cuenta como 0). La agrupación
// es por igualdad exacta de categoría; la categoría vacía forma su propio
// grupo, no se descarta. El resultado queda ordenado por categoría.
func AggregateParts(parts []entity.Part) PartStats {
	s := PartStats{TotalValue: decimal.Zero}
	groups := make(map[string]*CategoryBreakdown)

	for _, p := range parts {
		s.TotalParts++

		status := ledger.StatusOf(p.CurrentStock, p.MinimumStock)
		switch status {
		case entity.StockStatusLowStock:
			s.LowStockParts++
		case entity.StockStatusOutOfStock:
			s.OutOfStockParts++
		}

		s.TotalValue = s.TotalValue.Add(p.UnitPrice.Mul(decimal.NewFromInt(p.CurrentStock)))

		g, ok := groups[p.Category]
		if !ok {
			g = &CategoryBreakdown{Category: p.Category}
			groups[p.Category] = g
		}
		g.Count++
		g.TotalStock += p.CurrentStock
		if status != entity.StockStatusNormal {
			g.LowStock++
		}
	}

	s.ByCategory = make([]CategoryBreakdown, 0, len(groups))
	for _, g := range groups {
		s.ByCategory = append(s.ByCategory, *g)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	return s
}
