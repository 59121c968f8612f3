package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/application/finance"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

const testUser = "user-1"

// fakeFinanceRepo almacén en memoria que preserva el orden de inserción.
type fakeFinanceRepo struct {
	records map[string]*entity.FinanceRecord
	order   []string
}

func newFakeFinanceRepo() *fakeFinanceRepo {
	return &fakeFinanceRepo{records: make(map[string]*entity.FinanceRecord)}
}

func copyRecord(rec *entity.FinanceRecord) *entity.FinanceRecord {
	cp := *rec
	if rec.Recurring != nil {
		rc := *rec.Recurring
		cp.Recurring = &rc
	}
	return &cp
}

func (r *fakeFinanceRepo) Create(rec *entity.FinanceRecord) error {
	r.records[rec.ID] = copyRecord(rec)
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *fakeFinanceRepo) GetByID(id string) (*entity.FinanceRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return copyRecord(rec), nil
}

func (r *fakeFinanceRepo) Update(rec *entity.FinanceRecord) error {
	if _, ok := r.records[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	r.records[rec.ID] = copyRecord(rec)
	return nil
}

func (r *fakeFinanceRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeFinanceRepo) List(filter repository.FinanceFilter) (*repository.ListResult[entity.FinanceRecord], error) {
	all, _ := r.ListAll(filter)
	page := filter.Page.Normalize()
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return &repository.ListResult[entity.FinanceRecord]{
		Items: all[start:end], Total: int64(len(all)), Page: page.Page, Limit: page.Limit,
	}, nil
}

func (r *fakeFinanceRepo) ListAll(_ repository.FinanceFilter) ([]entity.FinanceRecord, error) {
	out := make([]entity.FinanceRecord, 0, len(r.order))
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok {
			out = append(out, *copyRecord(rec))
		}
	}
	return out, nil
}

func newUseCase() (*finance.FinanceUseCase, *fakeFinanceRepo) {
	repo := newFakeFinanceRepo()
	return finance.NewFinanceUseCase(repo), repo
}

func validIncome() dto.CreateFinanceRecordRequest {
	return dto.CreateFinanceRecordRequest{
		Type:        entity.FinanceIngreso,
		Category:    "Venta de repuestos",
		Description: "Venta de filtros",
		Amount:      decimal.NewFromInt(120000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestFinanceCreate_FechaCeroEsAhora(t *testing.T) {
	uc, _ := newUseCase()

	before := time.Now()
	got, err := uc.Create(testUser, validIncome())
	require.NoError(t, err)

	assert.False(t, got.Date.Before(before), "sin fecha explícita se usa el momento de creación")
	assert.False(t, got.Date.After(time.Now()))
	assert.Equal(t, testUser, got.CreatedBy)
}

func TestFinanceCreate_RespetaFechaExplicita(t *testing.T) {
	uc, _ := newUseCase()

	date := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	req := validIncome()
	req.Date = date

	got, err := uc.Create(testUser, req)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(date), "una fecha pasada o futura se acepta tal cual")
}

func TestFinanceCreate_CategoriaVaciaPermitida(t *testing.T) {
	uc, _ := newUseCase()

	req := validIncome()
	req.Category = ""
	got, err := uc.Create(testUser, req)
	require.NoError(t, err)
	assert.Empty(t, got.Category)
}

func TestFinanceCreate_Validaciones(t *testing.T) {
	uc, _ := newUseCase()

	cases := []struct {
		name   string
		mutate func(*dto.CreateFinanceRecordRequest)
	}{
		{"tipo desconocido", func(r *dto.CreateFinanceRecordRequest) { r.Type = "gasto" }},
		{"descripción vacía", func(r *dto.CreateFinanceRecordRequest) { r.Description = "" }},
		{"monto cero", func(r *dto.CreateFinanceRecordRequest) { r.Amount = decimal.Zero }},
		{"monto negativo", func(r *dto.CreateFinanceRecordRequest) { r.Amount = decimal.NewFromInt(-500) }},
		{"recurrente sin programación", func(r *dto.CreateFinanceRecordRequest) { r.IsRecurring = true }},
		{"recurrente sin frecuencia", func(r *dto.CreateFinanceRecordRequest) {
			r.IsRecurring = true
			r.Recurring = &dto.RecurringConfigDTO{}
		}},
		{"frecuencia desconocida", func(r *dto.CreateFinanceRecordRequest) {
			r.IsRecurring = true
			r.Recurring = &dto.RecurringConfigDTO{Frequency: "bimestral"}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validIncome()
			tc.mutate(&req)
			_, err := uc.Create(testUser, req)
			assert.True(t, domain.IsValidation(err), "se esperaba error de validación, llegó: %v", err)
		})
	}
}

func TestFinanceCreate_RecurrenteActivaPorDefecto(t *testing.T) {
	uc, _ := newUseCase()

	got, err := uc.Create(testUser, dto.CreateFinanceRecordRequest{
		Type:        entity.FinanceEgreso,
		Category:    "Arriendo",
		Description: "Arriendo del local",
		Amount:      decimal.NewFromInt(800000),
		IsRecurring: true,
		Recurring: &dto.RecurringConfigDTO{
			Frequency: entity.FrequencyMensual,
			NextDate:  time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Recurring)
	require.NotNil(t, got.Recurring.IsActive)
	assert.True(t, *got.Recurring.IsActive, "is_active ausente se interpreta como activa")
}

func TestFinanceCreate_RecurrenteRespetaIsActiveFalse(t *testing.T) {
	uc, _ := newUseCase()

	inactive := false
	got, err := uc.Create(testUser, dto.CreateFinanceRecordRequest{
		Type:        entity.FinanceEgreso,
		Description: "Seguro anual",
		Amount:      decimal.NewFromInt(300000),
		IsRecurring: true,
		Recurring: &dto.RecurringConfigDTO{
			Frequency: entity.FrequencyAnual,
			IsActive:  &inactive,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Recurring)
	require.NotNil(t, got.Recurring.IsActive)
	assert.False(t, *got.Recurring.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización: patch parcial revalidado sobre el resultado.
// ──────────────────────────────────────────────────────────────────────────────

func TestFinanceUpdate_PatchParcial(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(testUser, validIncome())
	require.NoError(t, err)

	amount := decimal.NewFromInt(150000)
	got, err := uc.Update(created.ID, dto.UpdateFinanceRecordRequest{Amount: &amount})
	require.NoError(t, err)

	assert.True(t, got.Amount.Equal(amount))
	assert.Equal(t, created.Description, got.Description, "los campos no enviados no cambian")
	assert.Equal(t, created.Category, got.Category)
}

func TestFinanceUpdate_RevalidaElResultado(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(testUser, validIncome())
	require.NoError(t, err)

	badType := "gasto"
	_, err = uc.Update(created.ID, dto.UpdateFinanceRecordRequest{Type: &badType})
	assert.True(t, domain.IsValidation(err))

	zero := decimal.Zero
	_, err = uc.Update(created.ID, dto.UpdateFinanceRecordRequest{Amount: &zero})
	assert.True(t, domain.IsValidation(err))
}

func TestFinanceUpdate_ApagarRecurrenciaLimpiaProgramacion(t *testing.T) {
	uc, _ := newUseCase()

	req := validIncome()
	req.IsRecurring = true
	req.Recurring = &dto.RecurringConfigDTO{Frequency: entity.FrequencyMensual}
	created, err := uc.Create(testUser, req)
	require.NoError(t, err)
	require.NotNil(t, created.Recurring)

	off := false
	got, err := uc.Update(created.ID, dto.UpdateFinanceRecordRequest{IsRecurring: &off})
	require.NoError(t, err)

	assert.False(t, got.IsRecurring)
	assert.Nil(t, got.Recurring, "la programación existe solo mientras el registro sea recurrente")
}

func TestFinanceGetByID_NoExisteEsNotFound(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinanceUpdate_NoExisteEsNotFound(t *testing.T) {
	uc, _ := newUseCase()
	desc := "otra descripción"
	_, err := uc.Update("no-existe", dto.UpdateFinanceRecordRequest{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
