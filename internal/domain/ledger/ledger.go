// Package ledger contiene las reglas puras de movimientos de stock
// (servicio de dominio, sin dependencias de infraestructura).
package ledger

import (
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// Effect devuelve el efecto con signo de un movimiento sobre el stock.
// entrada: +cantidad; salida/transferencia: -cantidad; ajuste: objetivo - stock previo.
func Effect(movType string, quantity, previousStock int64) int64 {
	switch movType {
	case entity.MovementEntrada:
		return quantity
	case entity.MovementSalida, entity.MovementTransferencia:
		return -quantity
	case entity.MovementAjuste:
		return quantity - previousStock
	default:
		return 0
	}
}

// Apply valida un movimiento contra el stock previo y calcula el stock resultante.
// Para entrada/salida/transferencia, quantity es magnitud y debe ser > 0.
// Para ajuste, quantity es el nivel absoluto objetivo y debe ser >= 0.
// Una salida o transferencia que dejaría el stock negativo se rechaza, nunca se recorta.
func Apply(previousStock int64, movType string, quantity int64) (int64, error) {
	if !entity.IsValidMovementType(movType) {
		return 0, domain.NewValidationf("tipo de movimiento inválido: %q", movType)
	}

	switch movType {
	case entity.MovementAjuste:
		if quantity < 0 {
			return 0, domain.NewValidation("el ajuste requiere un nivel objetivo mayor o igual a cero")
		}
		return quantity, nil
	default:
		if quantity <= 0 {
			return 0, domain.NewValidation("la cantidad debe ser mayor a cero")
		}
	}

	newStock := previousStock + Effect(movType, quantity, previousStock)
	if newStock < 0 {
		return 0, domain.ErrInsufficientStock
	}
	return newStock, nil
}

// Replay recalcula el stock aplicando el efecto de cada movimiento en orden.
// Es la definición auditable de CurrentStock; la columna materializada debe
// coincidir siempre con este resultado.
func Replay(movements []entity.StockMovement) int64 {
	var stock int64
	for _, m := range movements {
		stock += Effect(m.Type, m.Quantity, m.PreviousStock)
	}
	return stock
}

// StatusOf deriva el estado de stock. Stock cero domina siempre: un repuesto
// con mínimo 0 y stock 0 está agotado, no en stock bajo.
func StatusOf(currentStock, minimumStock int64) string {
	switch {
	case currentStock == 0:
		return entity.StockStatusOutOfStock
	case currentStock <= minimumStock:
		return entity.StockStatusLowStock
	default:
		return entity.StockStatusNormal
	}
}
