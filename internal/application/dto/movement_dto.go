package dto

import "time"

// ApplyMovementRequest entrada para aplicar un movimiento de stock.
// Para entrada/salida/transferencia Quantity es magnitud (> 0); para ajuste
// es el nivel absoluto objetivo (>= 0).
type ApplyMovementRequest struct {
	Type      string `json:"type" validate:"required"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason" validate:"required"`
	Reference string `json:"reference"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID            string    `json:"id"`
	PartID        string    `json:"part_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	Reason        string    `json:"reason"`
	Reference     string    `json:"reference,omitempty"`
	Date          time.Time `json:"date"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplyMovementResponse el repuesto actualizado junto al movimiento registrado.
type ApplyMovementResponse struct {
	Part     PartResponse     `json:"part"`
	Movement MovementResponse `json:"movement"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementHistoryResponse historial completo de un repuesto, sin paginar,
// en orden de aplicación (el saldo inicial primero).
type MovementHistoryResponse struct {
	PartID string             `json:"part_id"`
	Items  []MovementResponse `json:"items"`
}
