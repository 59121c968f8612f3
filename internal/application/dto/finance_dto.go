package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringConfigDTO programación de un registro recurrente.
// IsActive admite nil en la creación: se interpreta como true.
type RecurringConfigDTO struct {
	Frequency string     `json:"frequency"`
	NextDate  time.Time  `json:"next_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

// CreateFinanceRecordRequest entrada para crear un registro de caja.
// Date en cero se interpreta como "ahora".
type CreateFinanceRecordRequest struct {
	Type          string              `json:"type" validate:"required"`
	Category      string              `json:"category"`
	Subcategory   string              `json:"subcategory"`
	Description   string              `json:"description" validate:"required"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          time.Time           `json:"date"`
	PaymentMethod string              `json:"payment_method"`
	Reference     string              `json:"reference"`
	Notes         string              `json:"notes"`
	Tags          []string            `json:"tags"`
	SourceType    string              `json:"source_type"`
	SourceID      string              `json:"source_id"`
	IsRecurring   bool                `json:"is_recurring"`
	Recurring     *RecurringConfigDTO `json:"recurring_config"`
}

// UpdateFinanceRecordRequest entrada para actualizar un registro (patch parcial).
type UpdateFinanceRecordRequest struct {
	Type          *string             `json:"type"`
	Category      *string             `json:"category"`
	Subcategory   *string             `json:"subcategory"`
	Description   *string             `json:"description"`
	Amount        *decimal.Decimal    `json:"amount"`
	Date          *time.Time          `json:"date"`
	PaymentMethod *string             `json:"payment_method"`
	Reference     *string             `json:"reference"`
	Notes         *string             `json:"notes"`
	Tags          []string            `json:"tags"`
	SourceType    *string             `json:"source_type"`
	SourceID      *string             `json:"source_id"`
	IsRecurring   *bool               `json:"is_recurring"`
	Recurring     *RecurringConfigDTO `json:"recurring_config"`
}

// FinanceRecordResponse salida de un registro de caja.
type FinanceRecordResponse struct {
	ID            string              `json:"id"`
	Type          string              `json:"type"`
	Category      string              `json:"category"`
	Subcategory   string              `json:"subcategory,omitempty"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          time.Time           `json:"date"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Reference     string              `json:"reference,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	Tags          []string            `json:"tags,omitempty"`
	SourceType    string              `json:"source_type,omitempty"`
	SourceID      string              `json:"source_id,omitempty"`
	IsRecurring   bool                `json:"is_recurring"`
	Recurring     *RecurringConfigDTO `json:"recurring_config,omitempty"`
	CreatedBy     string              `json:"created_by,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// FinanceListResponse lista paginada de registros de caja.
type FinanceListResponse struct {
	Items []FinanceRecordResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
