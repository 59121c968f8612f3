package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tallersoft/stockcaja/internal/application/reports"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/infrastructure/export"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func sampleInventoryReport() *reports.InventoryReport {
	return &reports.InventoryReport{
		GeneratedAt: time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
		Lines: []reports.InventoryReportLine{
			{
				Part: entity.Part{
					PartNumber:   "FIL-001",
					Name:         "Filtro de émbolo",
					Category:     "Filtros",
					Location:     "Estante A3",
					Unit:         entity.UnitPieza,
					CurrentStock: 12,
					MinimumStock: 5,
					UnitPrice:    decimal.NewFromInt(4500),
				},
				WarehouseName: "Bodega Central",
				Status:        entity.StockStatusNormal,
				StockValue:    decimal.NewFromInt(54000),
			},
		},
		TotalParts: 1,
		TotalValue: decimal.NewFromInt(54000),
	}
}

// parseCSV lee de vuelta el CSV generado con el mismo separador ';'.
func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestInventoryCSV_UTF8LlevaBOM(t *testing.T) {
	exporter := export.NewCSVExporter(export.EncodingUTF8)

	data, err := exporter.InventoryCSV(sampleInventoryReport())
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, utf8BOM), "el CSV UTF-8 empieza con BOM para Excel")

	rows := parseCSV(t, bytes.TrimPrefix(data, utf8BOM))
	require.Len(t, rows, 2, "cabecera más una fila por repuesto")
	assert.Equal(t, "codigo", rows[0][0])
	assert.Equal(t, "FIL-001", rows[1][0])
	assert.Equal(t, "Filtro de émbolo", rows[1][1])
	assert.Equal(t, "Bodega Central", rows[1][3])
	assert.Equal(t, "12", rows[1][6])
	assert.Equal(t, "4500.00", rows[1][9])
	assert.Equal(t, "54000.00", rows[1][10])
}

func TestInventoryCSV_Windows1252CodificaAcentos(t *testing.T) {
	exporter := export.NewCSVExporter(export.EncodingWindows1252)

	data, err := exporter.InventoryCSV(sampleInventoryReport())
	require.NoError(t, err)

	assert.False(t, bytes.HasPrefix(data, utf8BOM), "Windows-1252 no lleva BOM")
	// "é" en Windows-1252 es un solo byte (0xE9), no la secuencia UTF-8.
	assert.True(t, bytes.Contains(data, []byte{0xE9}))
	assert.False(t, bytes.Contains(data, []byte("émbolo")))

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	require.NoError(t, err)
	rows := parseCSV(t, decoded)
	assert.Equal(t, "Filtro de émbolo", rows[1][1], "decodificado de vuelta, el texto es el original")
}

func TestFinanceCSV_CamposDerivados(t *testing.T) {
	exporter := export.NewCSVExporter(export.EncodingUTF8)

	records := []entity.FinanceRecord{
		{
			Type:          entity.FinanceEgreso,
			Category:      "Arriendo",
			Description:   "Arriendo del local",
			Amount:        decimal.NewFromInt(800000),
			Date:          time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			PaymentMethod: "transferencia",
			Tags:          []string{"fijo", "local"},
			IsRecurring:   true,
			Recurring:     &entity.RecurringConfig{Frequency: entity.FrequencyMensual, IsActive: true},
		},
		{
			Type:        entity.FinanceIngreso,
			Description: "Venta mostrador",
			Amount:      decimal.NewFromFloat(152000.50),
			Date:        time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	data, err := exporter.FinanceCSV(records)
	require.NoError(t, err)

	rows := parseCSV(t, bytes.TrimPrefix(data, utf8BOM))
	require.Len(t, rows, 3)

	recurrente := rows[1]
	assert.Equal(t, "2026-08-01", recurrente[0])
	assert.Equal(t, "egreso", recurrente[1])
	assert.Equal(t, "800000.00", recurrente[5])
	assert.Equal(t, "fijo,local", recurrente[9], "las etiquetas se unen con coma")
	assert.Equal(t, "si", recurrente[10])
	assert.Equal(t, "mensual", recurrente[11])

	puntual := rows[2]
	assert.Equal(t, "ingreso", puntual[1])
	assert.Equal(t, "152000.50", puntual[5])
	assert.Equal(t, "no", puntual[10])
	assert.Empty(t, puntual[11], "sin recurrencia no hay frecuencia")
}

func TestFinanceCSV_SinRegistrosDejaSoloCabecera(t *testing.T) {
	exporter := export.NewCSVExporter(export.EncodingUTF8)

	data, err := exporter.FinanceCSV(nil)
	require.NoError(t, err)

	rows := parseCSV(t, bytes.TrimPrefix(data, utf8BOM))
	require.Len(t, rows, 1)
	assert.Equal(t, "fecha", rows[0][0])
}
