package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro financiero.
const (
	FinanceIngreso = "ingreso"
	FinanceEgreso  = "egreso"
)

// Frecuencias de recurrencia válidas.
const (
	FrequencyDiario     = "diario"
	FrequencySemanal    = "semanal"
	FrequencyQuincenal  = "quincenal"
	FrequencyMensual    = "mensual"
	FrequencyTrimestral = "trimestral"
	FrequencySemestral  = "semestral"
	FrequencyAnual      = "anual"
)

// Frequencies lista las frecuencias de recurrencia aceptadas.
var Frequencies = []string{
	FrequencyDiario, FrequencySemanal, FrequencyQuincenal, FrequencyMensual,
	FrequencyTrimestral, FrequencySemestral, FrequencyAnual,
}

// IsValidFrequency reporta si f es una frecuencia aceptada.
func IsValidFrequency(f string) bool {
	for _, v := range Frequencies {
		if v == f {
			return true
		}
	}
	return false
}

// Métodos de pago sugeridos. No se valida pertenencia: el campo queda
// documentado pero abierto, igual que las categorías.
var PaymentMethods = []string{
	"efectivo", "tarjeta", "transferencia", "cheque", "credito", "otro",
}

// Categorías sugeridas por tipo de registro (solo para catálogos de UI).
var (
	IncomeCategories = []string{
		"Venta de repuestos", "Servicio tecnico", "Venta de equipos", "Otros ingresos",
	}
	ExpenseCategories = []string{
		"Compra de repuestos", "Arriendo", "Servicios publicos", "Nomina",
		"Transporte", "Impuestos", "Otros egresos",
	}
)

// RecurringConfig describe la programación de un registro recurrente.
// El motor solo valida y almacena la programación; generar las ocurrencias
// futuras es responsabilidad de un scheduler externo.
type RecurringConfig struct {
	Frequency string
	NextDate  time.Time
	EndDate   *time.Time // nil = sin fecha de fin
	IsActive  bool
}

// FinanceRecord es el hecho inmutable de un ingreso o egreso de caja.
// SourceType/SourceID enlazan el registro con el objeto de negocio que lo
// originó (una venta, una compra); son opacos para este núcleo.
type FinanceRecord struct {
	ID            string
	Seq           int64 // orden de inserción, desempata registros con la misma fecha
	Type          string
	Category      string
	Subcategory   string
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod string
	Reference     string
	Notes         string
	Tags          []string
	SourceType    string
	SourceID      string
	IsRecurring   bool
	Recurring     *RecurringConfig // presente solo si IsRecurring
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
