package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersoft/stockcaja/internal/application/reports"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

func TestGenerateInventoryPDF_ProduceDocumento(t *testing.T) {
	report := &reports.InventoryReport{
		GeneratedAt: time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
		Lines: []reports.InventoryReportLine{
			{
				Part: entity.Part{
					PartNumber: "FIL-001", Name: "Filtro de aceite",
					CurrentStock: 12, MinimumStock: 5,
					UnitPrice: decimal.NewFromInt(4500),
				},
				WarehouseName: "Bodega Central",
				Status:        entity.StockStatusNormal,
				StockValue:    decimal.NewFromInt(54000),
			},
			{
				Part:       entity.Part{PartNumber: "PAS-040", Name: "Pastillas de freno"},
				Status:     entity.StockStatusOutOfStock,
				StockValue: decimal.Zero,
			},
		},
		TotalParts: 2,
		OutOfStock: 1,
		TotalValue: decimal.NewFromInt(54000),
	}

	data, err := NewMarotoPDFGenerator().GenerateInventoryPDF(report)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el documento empieza con la firma PDF")
}

func TestGenerateInventoryPDF_SinLineas(t *testing.T) {
	// Un inventario vacío genera igual el documento con resumen en ceros.
	report := &reports.InventoryReport{
		GeneratedAt: time.Now(),
		TotalValue:  decimal.Zero,
	}
	data, err := NewMarotoPDFGenerator().GenerateInventoryPDF(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"950":      "950",
		"1000":     "1.000",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"54321987": "54.321.987",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), "formatMoney(%q)", in)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Agotado", statusLabel(entity.StockStatusOutOfStock))
	assert.Equal(t, "Bajo", statusLabel(entity.StockStatusLowStock))
	assert.Equal(t, "Normal", statusLabel(entity.StockStatusNormal))
}
