package parts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/ledger"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// MovementUseCase registra movimientos de stock de forma transaccional, con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. El registro del
// movimiento y la actualización de current_stock son un solo paso atómico:
// un rechazo deja stock e historial intactos.
type MovementUseCase struct {
	txRunner TxRunner
	partRepo repository.PartRepository
	movRepo  repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	movRepo repository.MovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner: txRunner,
		partRepo: partRepo,
		movRepo:  movRepo,
	}
}

// Apply valida y aplica un movimiento sobre un repuesto. Devuelve el repuesto
// actualizado (con su estado recalculado) y el movimiento registrado.
func (uc *MovementUseCase) Apply(ctx context.Context, partID, userID string, in dto.ApplyMovementRequest) (*dto.ApplyMovementResponse, error) {
	if !entity.IsValidMovementType(in.Type) {
		return nil, domain.NewValidationf("tipo de movimiento inválido: %q", in.Type)
	}
	if in.Reason == "" {
		return nil, domain.NewValidation("el motivo es obligatorio")
	}

	now := time.Now()
	var (
		updated  *entity.Part
		movement *entity.StockMovement
	)

	err := uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del repuesto para serializar movimientos concurrentes
		part, err := partRepo.GetForUpdate(partID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}

		newStock, err := ledger.Apply(part.CurrentStock, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			PartID:        part.ID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			PreviousStock: part.CurrentStock,
			NewStock:      newStock,
			Reason:        in.Reason,
			Reference:     in.Reference,
			Date:          now,
			CreatedBy:     userID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := partRepo.UpdateStock(part.ID, newStock); err != nil {
			return err
		}

		part.CurrentStock = newStock
		part.UpdatedAt = now
		updated = part
		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ApplyMovementResponse{
		Part:     *toPartResponse(updated),
		Movement: toMovementResponse(movement),
	}, nil
}

// List lista movimientos según el filtro, con el total antes de paginar.
func (uc *MovementUseCase) List(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	filter.Page = filter.Page.Normalize()

	result, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toMovementResponse(&result.Items[i]))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.NewPageResponse(result.Page, result.Limit, result.Total),
	}, nil
}

// History devuelve el historial completo de un repuesto en orden de
// aplicación, empezando por el saldo inicial.
func (uc *MovementUseCase) History(partID string) ([]dto.MovementResponse, error) {
	part, err := uc.partRepo.GetByID(partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}

	movs, err := uc.movRepo.ListByPart(partID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for i := range movs {
		out = append(out, toMovementResponse(&movs[i]))
	}
	return out, nil
}
