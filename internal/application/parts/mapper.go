package parts

import (
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/ledger"
)

func toPartResponse(p *entity.Part) *dto.PartResponse {
	resp := &dto.PartResponse{
		ID:           p.ID,
		PartNumber:   p.PartNumber,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Location:     p.Location,
		WarehouseID:  p.WarehouseID,
		Unit:         p.Unit,
		UnitPrice:    p.UnitPrice,
		MinimumStock: p.MinimumStock,
		MaximumStock: p.MaximumStock,
		CurrentStock: p.CurrentStock,
		Status:       ledger.StatusOf(p.CurrentStock, p.MinimumStock),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if !p.Supplier.IsZero() {
		resp.Supplier = &dto.SupplierDTO{
			Name:    p.Supplier.Name,
			Contact: p.Supplier.Contact,
			Phone:   p.Supplier.Phone,
			Email:   p.Supplier.Email,
		}
	}
	return resp
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		PartID:        m.PartID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reason:        m.Reason,
		Reference:     m.Reference,
		Date:          m.Date,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}
