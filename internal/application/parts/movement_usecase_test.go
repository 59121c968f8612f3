package parts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de movimientos: registrar y actualizar el stock materializado son
// un solo paso; un rechazo no deja rastro ni en el stock ni en el historial.
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementApply_EntradaSumaYRegistra(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 50)

	got, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type:      entity.MovementEntrada,
		Quantity:  20,
		Reason:    "Compra a proveedor",
		Reference: "FC-1043",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(70), got.Part.CurrentStock)
	assert.Equal(t, int64(50), got.Movement.PreviousStock)
	assert.Equal(t, int64(70), got.Movement.NewStock)
	assert.Equal(t, "FC-1043", got.Movement.Reference)
	assert.Equal(t, testUser, got.Movement.CreatedBy)

	// El stock materializado quedó persistido, no solo en la respuesta.
	part, err := env.partUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(70), part.CurrentStock)
}

func TestMovementApply_SalidaInsuficienteNoCambiaNada(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 10)

	_, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type:     entity.MovementSalida,
		Quantity: 11,
		Reason:   "Entrega a taller",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	part, err := env.partUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), part.CurrentStock, "un rechazo no toca el stock")

	movs, err := env.movUC.History(created.ID)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "un rechazo no deja movimiento registrado, queda solo la apertura")
}

func TestMovementApply_AjusteFijaNivelAbsoluto(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 55)

	got, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type:     entity.MovementAjuste,
		Quantity: 40,
		Reason:   "Conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), got.Part.CurrentStock, "el ajuste fija el nivel, no suma")
	assert.Equal(t, int64(55), got.Movement.PreviousStock)
	assert.Equal(t, int64(40), got.Movement.NewStock)
}

func TestMovementApply_RepuestoInexistenteEsNotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.movUC.Apply(context.Background(), "no-existe", testUser, dto.ApplyMovementRequest{
		Type:     entity.MovementEntrada,
		Quantity: 1,
		Reason:   "Compra",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementApply_TipoInvalidoRechazado(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 5)

	_, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type:     "devolucion",
		Quantity: 1,
		Reason:   "Compra",
	})
	assert.True(t, domain.IsValidation(err))
}

func TestMovementApply_MotivoObligatorio(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 5)

	_, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type:     entity.MovementEntrada,
		Quantity: 1,
	})
	assert.True(t, domain.IsValidation(err), "todo movimiento requiere motivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementHistory_EmpiezaConLaApertura(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 50)

	_, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type: entity.MovementEntrada, Quantity: 20, Reason: "Compra",
	})
	require.NoError(t, err)
	_, err = env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
		Type: entity.MovementSalida, Quantity: 15, Reason: "Entrega",
	})
	require.NoError(t, err)

	movs, err := env.movUC.History(created.ID)
	require.NoError(t, err)
	require.Len(t, movs, 3)

	assert.Equal(t, entity.OpeningReason, movs[0].Reason, "el historial arranca con la apertura")
	assert.Equal(t, int64(50), movs[0].NewStock)
	assert.Equal(t, int64(70), movs[1].NewStock)
	assert.Equal(t, int64(55), movs[2].NewStock)

	// Cada NewStock es el PreviousStock del siguiente: la cadena no tiene saltos.
	for i := 1; i < len(movs); i++ {
		assert.Equal(t, movs[i-1].NewStock, movs[i].PreviousStock)
	}
}

func TestMovementHistory_RepuestoInexistenteEsNotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.movUC.History("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementList_PaginaConTotal(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 0)

	// 44 entradas más la apertura: 45 movimientos en total.
	for i := 0; i < 44; i++ {
		_, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
			Type: entity.MovementEntrada, Quantity: 1, Reason: "Reposición",
		})
		require.NoError(t, err)
	}

	got, err := env.movUC.List(repository.MovementFilter{
		PartID: created.ID,
		Page:   repository.Page{Page: 3, Limit: 20},
	})
	require.NoError(t, err)

	assert.Len(t, got.Items, 5, "la última página trae solo el resto")
	assert.Equal(t, int64(45), got.Page.Total, "el total cuenta antes de truncar")
	assert.Equal(t, int64(3), got.Page.TotalPages)
	assert.Equal(t, 3, got.Page.Page)
	assert.Equal(t, 20, got.Page.Limit)
}

func TestMovementList_DefaultsDePagina(t *testing.T) {
	env := newTestEnv()
	created := createPart(t, env, 0)

	for i := 0; i < 25; i++ {
		_, err := env.movUC.Apply(context.Background(), created.ID, testUser, dto.ApplyMovementRequest{
			Type: entity.MovementEntrada, Quantity: 1, Reason: "Reposición",
		})
		require.NoError(t, err)
	}

	// Sin página ni límite: defaults 1 y 20.
	got, err := env.movUC.List(repository.MovementFilter{PartID: created.ID})
	require.NoError(t, err)

	assert.Len(t, got.Items, 20)
	assert.Equal(t, 1, got.Page.Page)
	assert.Equal(t, 20, got.Page.Limit)
	assert.Equal(t, int64(26), got.Page.Total)
}
