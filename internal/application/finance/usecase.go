package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// FinanceUseCase casos de uso para registros de caja (ingresos y egresos).
// Los registros son hechos: no hay recálculo derivado ni ejecución de
// programaciones recurrentes aquí; un scheduler externo consume la
// configuración almacenada.
type FinanceUseCase struct {
	repo repository.FinanceRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(repo repository.FinanceRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

// Create crea un registro de caja. La fecha en cero se interpreta como ahora;
// isActive de la recurrencia por defecto es true.
func (uc *FinanceUseCase) Create(userID string, in dto.CreateFinanceRecordRequest) (*dto.FinanceRecordResponse, error) {
	now := time.Now()

	rec := &entity.FinanceRecord{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Category:      in.Category,
		Subcategory:   in.Subcategory,
		Description:   in.Description,
		Amount:        in.Amount,
		Date:          in.Date,
		PaymentMethod: in.PaymentMethod,
		Reference:     in.Reference,
		Notes:         in.Notes,
		Tags:          in.Tags,
		SourceType:    in.SourceType,
		SourceID:      in.SourceID,
		IsRecurring:   in.IsRecurring,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if rec.Date.IsZero() {
		rec.Date = now
	}
	if in.Recurring != nil {
		rec.Recurring = &entity.RecurringConfig{
			Frequency: in.Recurring.Frequency,
			NextDate:  in.Recurring.NextDate,
			EndDate:   in.Recurring.EndDate,
			IsActive:  true,
		}
		if in.Recurring.IsActive != nil {
			rec.Recurring.IsActive = *in.Recurring.IsActive
		}
	}
	if !rec.IsRecurring {
		// La programación existe solo mientras el registro sea recurrente.
		rec.Recurring = nil
	}

	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(rec); err != nil {
		return nil, err
	}
	return toFinanceResponse(rec), nil
}

// GetByID obtiene un registro por ID.
func (uc *FinanceUseCase) GetByID(id string) (*dto.FinanceRecordResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toFinanceResponse(rec), nil
}

// Update actualiza un registro (patch parcial) y revalida el conjunto
// completo de reglas sobre el resultado.
func (uc *FinanceUseCase) Update(id string, in dto.UpdateFinanceRecordRequest) (*dto.FinanceRecordResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	if in.Type != nil {
		rec.Type = *in.Type
	}
	if in.Category != nil {
		rec.Category = *in.Category
	}
	if in.Subcategory != nil {
		rec.Subcategory = *in.Subcategory
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}
	if in.Amount != nil {
		rec.Amount = *in.Amount
	}
	if in.Date != nil {
		rec.Date = *in.Date
	}
	if in.PaymentMethod != nil {
		rec.PaymentMethod = *in.PaymentMethod
	}
	if in.Reference != nil {
		rec.Reference = *in.Reference
	}
	if in.Notes != nil {
		rec.Notes = *in.Notes
	}
	if in.Tags != nil {
		rec.Tags = in.Tags
	}
	if in.SourceType != nil {
		rec.SourceType = *in.SourceType
	}
	if in.SourceID != nil {
		rec.SourceID = *in.SourceID
	}
	if in.IsRecurring != nil {
		rec.IsRecurring = *in.IsRecurring
	}
	if in.Recurring != nil {
		cfg := &entity.RecurringConfig{
			Frequency: in.Recurring.Frequency,
			NextDate:  in.Recurring.NextDate,
			EndDate:   in.Recurring.EndDate,
			IsActive:  true,
		}
		if in.Recurring.IsActive != nil {
			cfg.IsActive = *in.Recurring.IsActive
		}
		rec.Recurring = cfg
	}
	if !rec.IsRecurring {
		// La programación existe solo mientras el registro sea recurrente.
		rec.Recurring = nil
	}

	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	rec.UpdatedAt = time.Now()
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return toFinanceResponse(rec), nil
}

// Delete elimina un registro. No hay ocurrencias futuras materializadas que
// borrar en cascada: el scheduler externo es quien las genera.
func (uc *FinanceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista registros según el filtro, con el total antes de paginar.
func (uc *FinanceUseCase) List(filter repository.FinanceFilter) (*dto.FinanceListResponse, error) {
	filter.Page = filter.Page.Normalize()

	result, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinanceRecordResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, *toFinanceResponse(&result.Items[i]))
	}
	return &dto.FinanceListResponse{
		Items: items,
		Page:  dto.NewPageResponse(result.Page, result.Limit, result.Total),
	}, nil
}

// validateRecord aplica las reglas de un registro de caja sobre el estado
// final (creación o resultado del patch).
func validateRecord(rec *entity.FinanceRecord) error {
	if rec.Type != entity.FinanceIngreso && rec.Type != entity.FinanceEgreso {
		return domain.NewValidationf("tipo de registro inválido: %q", rec.Type)
	}
	if rec.Description == "" {
		return domain.NewValidation("la descripción es obligatoria")
	}
	if !rec.Amount.IsPositive() {
		return domain.NewValidation("el monto debe ser mayor a cero")
	}
	if rec.IsRecurring {
		if rec.Recurring == nil || rec.Recurring.Frequency == "" {
			return domain.NewValidation("un registro recurrente requiere frecuencia")
		}
		if !entity.IsValidFrequency(rec.Recurring.Frequency) {
			return domain.NewValidationf("frecuencia inválida: %q", rec.Recurring.Frequency)
		}
	}
	return nil
}

func toFinanceResponse(r *entity.FinanceRecord) *dto.FinanceRecordResponse {
	resp := &dto.FinanceRecordResponse{
		ID:            r.ID,
		Type:          r.Type,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
		Notes:         r.Notes,
		Tags:          r.Tags,
		SourceType:    r.SourceType,
		SourceID:      r.SourceID,
		IsRecurring:   r.IsRecurring,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Recurring != nil {
		active := r.Recurring.IsActive
		resp.Recurring = &dto.RecurringConfigDTO{
			Frequency: r.Recurring.Frequency,
			NextDate:  r.Recurring.NextDate,
			EndDate:   r.Recurring.EndDate,
			IsActive:  &active,
		}
	}
	return resp
}
