package repository

import (
	"time"

	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// FinanceFilter restringe un listado de registros de caja. DateFrom inclusivo,
// DateTo exclusivo, sobre la fecha de negocio del registro.
type FinanceFilter struct {
	Type          string // ingreso | egreso | all
	Category      string
	PaymentMethod string
	Search        string // substring sobre descripción y referencia
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          Page
}

// FinanceRepository define el puerto de persistencia para FinanceRecord (DIP).
type FinanceRepository interface {
	Create(record *entity.FinanceRecord) error
	GetByID(id string) (*entity.FinanceRecord, error)
	Update(record *entity.FinanceRecord) error
	Delete(id string) error
	List(filter FinanceFilter) (*ListResult[entity.FinanceRecord], error)
	// ListAll ignora la paginación del filtro; alimenta agregados y exports.
	ListAll(filter FinanceFilter) ([]entity.FinanceRecord, error)
}
