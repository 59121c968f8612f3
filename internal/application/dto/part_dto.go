package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierDTO datos del proveedor de un repuesto (todos opcionales).
type SupplierDTO struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// CreatePartRequest entrada para crear un repuesto.
// InitialStock genera el movimiento implícito de saldo inicial.
type CreatePartRequest struct {
	PartNumber   string           `json:"part_number"`
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Description  string           `json:"description"`
	Category     string           `json:"category" validate:"required"`
	Location     string           `json:"location"`
	WarehouseID  string           `json:"warehouse_id" validate:"required"`
	Unit         string           `json:"unit" validate:"required"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	MinimumStock int64            `json:"minimum_stock" validate:"min=0"`
	MaximumStock *int64           `json:"maximum_stock"`
	InitialStock int64            `json:"initial_stock" validate:"min=0"`
	Supplier     *SupplierDTO     `json:"supplier"`
}

// UpdatePartRequest entrada para actualizar un repuesto (patch parcial).
// El stock no se toca por aquí: solo cambia vía movimientos.
type UpdatePartRequest struct {
	PartNumber   *string          `json:"part_number"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	Location     *string          `json:"location"`
	WarehouseID  *string          `json:"warehouse_id"`
	Unit         *string          `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	MinimumStock *int64           `json:"minimum_stock"`
	MaximumStock *int64           `json:"maximum_stock"`
	Supplier     *SupplierDTO     `json:"supplier"`
}

// PartResponse salida de un repuesto, con el estado de stock derivado.
type PartResponse struct {
	ID           string          `json:"id"`
	PartNumber   string          `json:"part_number"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Location     string          `json:"location"`
	WarehouseID  string          `json:"warehouse_id"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinimumStock int64           `json:"minimum_stock"`
	MaximumStock *int64          `json:"maximum_stock,omitempty"`
	CurrentStock int64           `json:"current_stock"`
	Status       string          `json:"status"`
	Supplier     *SupplierDTO    `json:"supplier,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PartListResponse lista paginada de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
