package parts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// PartUseCase casos de uso CRUD para repuestos. El stock nunca se edita por
// aquí: nace con el movimiento de saldo inicial y después solo cambia vía
// MovementUseCase.
type PartUseCase struct {
	txRunner      TxRunner
	partRepo      repository.PartRepository
	warehouseRepo repository.WarehouseRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	warehouseRepo repository.WarehouseRepository,
) *PartUseCase {
	return &PartUseCase{
		txRunner:      txRunner,
		partRepo:      partRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create crea un repuesto con su movimiento implícito de saldo inicial, todo
// en una transacción. El movimiento de apertura se registra aunque el saldo
// inicial sea cero, para que el historial arranque siempre con su apertura.
func (uc *PartUseCase) Create(ctx context.Context, userID string, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidation("el nombre es obligatorio")
	}
	if in.PartNumber == "" {
		return nil, domain.NewValidation("el número de parte es obligatorio")
	}
	if in.Category == "" {
		return nil, domain.NewValidation("la categoría es obligatoria")
	}
	if in.WarehouseID == "" {
		return nil, domain.NewValidation("la bodega es obligatoria")
	}
	if !entity.IsValidUnit(in.Unit) {
		return nil, domain.NewValidationf("unidad de medida inválida: %q", in.Unit)
	}
	if in.MinimumStock < 0 {
		return nil, domain.NewValidation("el stock mínimo no puede ser negativo")
	}
	if in.MaximumStock != nil && *in.MaximumStock < in.MinimumStock {
		return nil, domain.NewValidation("el stock máximo no puede ser menor al mínimo")
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.NewValidation("el precio unitario no puede ser negativo")
	}
	if in.InitialStock < 0 {
		return nil, domain.NewValidation("el stock inicial no puede ser negativo")
	}

	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: la bodega indicada no existe", domain.ErrNotFound)
	}

	now := time.Now()
	part := &entity.Part{
		ID:           uuid.New().String(),
		PartNumber:   in.PartNumber,
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Location:     in.Location,
		WarehouseID:  in.WarehouseID,
		Unit:         in.Unit,
		UnitPrice:    decimal.Zero,
		MinimumStock: in.MinimumStock,
		MaximumStock: in.MaximumStock,
		CurrentStock: in.InitialStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != nil {
		part.Supplier = entity.Supplier{
			Name:    in.Supplier.Name,
			Contact: in.Supplier.Contact,
			Phone:   in.Supplier.Phone,
			Email:   in.Supplier.Email,
		}
	}

	opening := &entity.StockMovement{
		ID:            uuid.New().String(),
		PartID:        part.ID,
		Type:          entity.MovementEntrada,
		Quantity:      in.InitialStock,
		PreviousStock: 0,
		NewStock:      in.InitialStock,
		Reason:        entity.OpeningReason,
		Date:          now,
		CreatedBy:     userID,
		CreatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := partRepo.Create(part); err != nil {
			return err
		}
		return movRepo.Create(opening)
	})
	if err != nil {
		return nil, err
	}

	return toPartResponse(part), nil
}

// GetByID obtiene un repuesto por ID.
func (uc *PartUseCase) GetByID(id string) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toPartResponse(part), nil
}

// Update actualiza campos de un repuesto (patch parcial). El stock no se toca.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}

	if in.PartNumber != nil {
		if *in.PartNumber == "" {
			return nil, domain.NewValidation("el número de parte no puede quedar vacío")
		}
		part.PartNumber = *in.PartNumber
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidation("el nombre no puede quedar vacío")
		}
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.NewValidation("la categoría no puede quedar vacía")
		}
		part.Category = *in.Category
	}
	if in.Location != nil {
		part.Location = *in.Location
	}
	if in.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, fmt.Errorf("%w: la bodega indicada no existe", domain.ErrNotFound)
		}
		part.WarehouseID = *in.WarehouseID
	}
	if in.Unit != nil {
		if !entity.IsValidUnit(*in.Unit) {
			return nil, domain.NewValidationf("unidad de medida inválida: %q", *in.Unit)
		}
		part.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.NewValidation("el precio unitario no puede ser negativo")
		}
		part.UnitPrice = *in.UnitPrice
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.NewValidation("el stock mínimo no puede ser negativo")
		}
		part.MinimumStock = *in.MinimumStock
	}
	if in.MaximumStock != nil {
		part.MaximumStock = in.MaximumStock
	}
	if part.MaximumStock != nil && *part.MaximumStock < part.MinimumStock {
		return nil, domain.NewValidation("el stock máximo no puede ser menor al mínimo")
	}
	if in.Supplier != nil {
		part.Supplier = entity.Supplier{
			Name:    in.Supplier.Name,
			Contact: in.Supplier.Contact,
			Phone:   in.Supplier.Phone,
			Email:   in.Supplier.Email,
		}
	}

	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// List lista repuestos según el filtro, con el total antes de paginar.
func (uc *PartUseCase) List(filter repository.PartFilter) (*dto.PartListResponse, error) {
	filter.Page = filter.Page.Normalize()

	result, err := uc.partRepo.List(filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PartResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, *toPartResponse(&result.Items[i]))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.NewPageResponse(result.Page, result.Limit, result.Total),
	}, nil
}

// Delete elimina un repuesto junto con todo su historial de movimientos.
func (uc *PartUseCase) Delete(id string) error {
	return uc.partRepo.Delete(id)
}
