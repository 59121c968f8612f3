package usecase

import (
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// CatalogUseCase expone los catálogos fijos que consumen los formularios
// del cliente: unidades, tipos de movimiento, categorías y frecuencias.
type CatalogUseCase struct{}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

// Catalogs devuelve todos los catálogos en una sola respuesta.
func (uc *CatalogUseCase) Catalogs() *dto.CatalogsResponse {
	return &dto.CatalogsResponse{
		Units:             entity.Units,
		MovementTypes:     entity.MovementTypes,
		PartCategories:    entity.PartCategories,
		IncomeCategories:  entity.IncomeCategories,
		ExpenseCategories: entity.ExpenseCategories,
		PaymentMethods:    entity.PaymentMethods,
		Frequencies:       entity.Frequencies,
		StockStatuses: []string{
			entity.StockStatusOutOfStock,
			entity.StockStatusLowStock,
			entity.StockStatusNormal,
		},
	}
}
