package parts

import (
	"context"

	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el movimiento registrado y la
// actualización del stock materializado sean un solo paso atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		movRepo repository.MovementRepository,
	) error) error
}
