package repository

import (
	"time"

	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// PartFilter restringe un listado de repuestos. Los filtros se combinan con
// AND; un campo vacío o con valor "all" no impone restricción. DateFrom es
// inclusivo y DateTo exclusivo, aplicados sobre la fecha de creación.
type PartFilter struct {
	Category    string
	WarehouseID string
	StockStatus string // low_stock | out_of_stock | normal | all
	Search      string // substring sobre nombre, descripción y número de parte
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        Page
}

// PartRepository define el puerto de persistencia para Part (DIP).
// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene sentido
// dentro de una transacción.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	GetForUpdate(id string) (*entity.Part, error)
	Update(part *entity.Part) error
	UpdateStock(id string, newStock int64) error
	List(filter PartFilter) (*ListResult[entity.Part], error)
	ListAll(filter PartFilter) ([]entity.Part, error)
	Delete(id string) error
}
