package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain"
)

// respondWith monta una app mínima que responde el error dado y devuelve
// status y cuerpo decodificado.
func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_StockInsuficienteConservaSuCodigo(t *testing.T) {
	// Es un error de validación, pero con código propio para el cliente.
	status, body := respondWith(t, domain.ErrInsufficientStock)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestRespondError_StockInsuficienteEnvuelto(t *testing.T) {
	// Los casos de uso envuelven con %w; el mapeo debe seguir reconociéndolo.
	wrapped := fmt.Errorf("aplicar movimiento: %w", domain.ErrInsufficientStock)
	status, body := respondWith(t, wrapped)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestRespondError_ValidacionUsaElMotivo(t *testing.T) {
	status, body := respondWith(t, domain.NewValidation("el nombre es obligatorio"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "el nombre es obligatorio", body.Message)
}

func TestRespondError_NotFoundEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("%w: la bodega indicada no existe", domain.ErrNotFound)
	status, body := respondWith(t, wrapped)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestRespondError_EmailExistente(t *testing.T) {
	status, body := respondWith(t, domain.ErrEmailAlreadyExists)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", body.Code)
}

func TestRespondError_Conflicto(t *testing.T) {
	wrapped := fmt.Errorf("%w: la bodega tiene repuestos asignados", domain.ErrConflict)
	status, body := respondWith(t, wrapped)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestRespondError_CredencialesNoRevelanExistencia(t *testing.T) {
	// Usuario inexistente y contraseña incorrecta responden idéntico.
	statusA, bodyA := respondWith(t, domain.ErrUserNotFound)
	statusB, bodyB := respondWith(t, domain.ErrUnauthorized)

	assert.Equal(t, fiber.StatusUnauthorized, statusA)
	assert.Equal(t, statusA, statusB)
	assert.Equal(t, bodyA, bodyB, "misma respuesta para email inexistente y contraseña errada")
	assert.Equal(t, "credenciales inválidas", bodyA.Message)
}

func TestRespondError_DesconocidoEsInterno(t *testing.T) {
	status, body := respondWith(t, fmt.Errorf("conexión perdida"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
}
