package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para un repuesto.
const (
	UnitPieza     = "pieza"
	UnitLitro     = "litro"
	UnitKilogramo = "kilogramo"
	UnitCaja      = "caja"
	UnitMetro     = "metro"
	UnitGalon     = "galon"
	UnitPar       = "par"
	UnitJuego     = "juego"
)

// Units lista las unidades de medida aceptadas.
var Units = []string{
	UnitPieza, UnitLitro, UnitKilogramo, UnitCaja,
	UnitMetro, UnitGalon, UnitPar, UnitJuego,
}

// IsValidUnit reporta si u es una unidad de medida aceptada.
func IsValidUnit(u string) bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}

// Estados de stock derivados (nunca se almacenan, se recalculan).
const (
	StockStatusOutOfStock = "out_of_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusNormal     = "normal"
)

// PartCategories categorías sugeridas para repuestos.
// La categoría es texto libre; esta lista solo alimenta los catálogos de la UI.
var PartCategories = []string{
	"Filtros", "Frenos", "Lubricantes", "Suspension", "Electrico",
	"Motor", "Transmision", "Llantas", "Carroceria", "Otros",
}

// Supplier datos opcionales del proveedor de un repuesto.
type Supplier struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// IsZero reporta si el proveedor no tiene ningún dato.
func (s Supplier) IsZero() bool {
	return s.Name == "" && s.Contact == "" && s.Phone == "" && s.Email == ""
}

// Part representa un repuesto o ítem de inventario.
// CurrentStock es una proyección materializada: se actualiza de forma atómica
// con cada movimiento registrado; la fuente de verdad auditable es el historial
// de StockMovement.
type Part struct {
	ID           string
	PartNumber   string // código asignado por el usuario, para búsqueda y display (no único)
	Name         string
	Description  string
	Category     string // texto libre, listas sugeridas en PartCategories
	Location     string
	WarehouseID  string
	Unit         string
	UnitPrice    decimal.Decimal // 0 si no se conoce
	MinimumStock int64
	MaximumStock *int64 // nil = sin tope
	CurrentStock int64
	Supplier     Supplier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
