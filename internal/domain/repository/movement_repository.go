package repository

import (
	"time"

	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// MovementFilter restringe un listado de movimientos. DateFrom inclusivo,
// DateTo exclusivo, sobre la fecha de negocio del movimiento.
type MovementFilter struct {
	PartID   string
	Type     string // entrada | salida | ajuste | transferencia | all
	Search   string // substring sobre motivo y referencia
	DateFrom *time.Time
	DateTo   *time.Time
	Page     Page
}

// MovementRepository define el puerto de persistencia para StockMovement.
// Los movimientos nunca se actualizan ni se borran sueltos: el historial de
// un repuesto cae junto con él (FK en cascada).
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(filter MovementFilter) (*ListResult[entity.StockMovement], error)
	// ListByPart devuelve el historial completo en orden de aplicación
	// (seq ascendente), sin paginar. Para auditoría y export.
	ListByPart(partID string) ([]entity.StockMovement, error)
}
