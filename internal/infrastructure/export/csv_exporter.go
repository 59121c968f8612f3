// Package export implementa los exports CSV descargables del inventario y la caja.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tallersoft/stockcaja/internal/application/reports"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
)

// Codificaciones soportadas (EXPORT_CSV_ENCODING).
const (
	EncodingUTF8        = "utf8"
	EncodingWindows1252 = "windows1252"
)

var _ reports.CSVExporter = (*CSVExporter)(nil)

// CSVExporter genera CSV con separador ';' (convención de Excel en español).
// Con EncodingWindows1252 el archivo abre directo en Excel sin asistente de
// importación; con UTF-8 se antepone BOM para que Excel detecte la codificación.
type CSVExporter struct {
	encoding string
}

// NewCSVExporter construye el exportador con la codificación configurada.
func NewCSVExporter(encoding string) *CSVExporter {
	return &CSVExporter{encoding: encoding}
}

// InventoryCSV exporta el snapshot de inventario, una fila por repuesto.
func (e *CSVExporter) InventoryCSV(report *reports.InventoryReport) ([]byte, error) {
	rows := [][]string{{
		"codigo", "nombre", "categoria", "bodega", "ubicacion", "unidad",
		"stock_actual", "stock_minimo", "estado", "precio_unitario", "valor_stock",
	}}
	for _, l := range report.Lines {
		rows = append(rows, []string{
			l.Part.PartNumber,
			l.Part.Name,
			l.Part.Category,
			l.WarehouseName,
			l.Part.Location,
			l.Part.Unit,
			strconv.FormatInt(l.Part.CurrentStock, 10),
			strconv.FormatInt(l.Part.MinimumStock, 10),
			l.Status,
			l.Part.UnitPrice.StringFixed(2),
			l.StockValue.StringFixed(2),
		})
	}
	return e.encode(rows)
}

// FinanceCSV exporta registros de caja, una fila por registro.
func (e *CSVExporter) FinanceCSV(records []entity.FinanceRecord) ([]byte, error) {
	rows := [][]string{{
		"fecha", "tipo", "categoria", "subcategoria", "descripcion", "monto",
		"metodo_pago", "referencia", "notas", "etiquetas", "recurrente", "frecuencia",
	}}
	for _, r := range records {
		frequency := ""
		if r.Recurring != nil {
			frequency = r.Recurring.Frequency
		}
		recurrente := "no"
		if r.IsRecurring {
			recurrente = "si"
		}
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			r.Type,
			r.Category,
			r.Subcategory,
			r.Description,
			r.Amount.StringFixed(2),
			r.PaymentMethod,
			r.Reference,
			r.Notes,
			strings.Join(r.Tags, ","),
			recurrente,
			frequency,
		})
	}
	return e.encode(rows)
}

// encode serializa las filas con la codificación configurada.
func (e *CSVExporter) encode(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	var w io.Writer = &buf
	var tw *transform.Writer

	if e.encoding == EncodingWindows1252 {
		tw = transform.NewWriter(&buf, charmap.Windows1252.NewEncoder())
		w = tw
	} else {
		// BOM para que Excel detecte UTF-8
		buf.Write([]byte{0xEF, 0xBB, 0xBF})
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("escribir csv: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return nil, fmt.Errorf("codificar csv: %w", err)
		}
	}
	return buf.Bytes(), nil
}
