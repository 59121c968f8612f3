package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementEntrada       = "entrada"       // ingreso de unidades
	MovementSalida        = "salida"        // egreso de unidades
	MovementAjuste        = "ajuste"        // fija el stock en un nivel absoluto
	MovementTransferencia = "transferencia" // salida hacia otra bodega
)

// MovementTypes lista los tipos de movimiento aceptados.
var MovementTypes = []string{
	MovementEntrada, MovementSalida, MovementAjuste, MovementTransferencia,
}

// IsValidMovementType reporta si t es un tipo de movimiento aceptado.
func IsValidMovementType(t string) bool {
	for _, v := range MovementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// OpeningReason es el motivo del movimiento implícito de saldo inicial
// registrado al crear un repuesto.
const OpeningReason = "Stock inicial"

// StockMovement es el hecho inmutable de un cambio de stock.
// Quantity es magnitud (> 0) para entrada/salida/transferencia; para ajuste es
// el nivel absoluto objetivo. PreviousStock y NewStock son la foto tomada al
// aplicar el movimiento; una vez registrado, nunca se modifica ni reordena.
type StockMovement struct {
	ID            string
	Seq           int64 // orden de inserción, desempata movimientos con la misma fecha
	PartID        string
	Type          string
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	Reason        string
	Reference     string
	Date          time.Time // fecha de negocio del movimiento
	CreatedBy     string
	CreatedAt     time.Time
}
