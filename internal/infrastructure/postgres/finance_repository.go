package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

const financeColumns = `id, seq, type, category, subcategory, description, amount, date,
	payment_method, reference, notes, tags, source_type, source_id, is_recurring,
	recurring_frequency, recurring_next_date, recurring_end_date, recurring_is_active,
	created_by, created_at, updated_at`

// FinanceRepo implementación del puerto FinanceRepository sobre PostgreSQL (usable con pool o tx).
// La programación de recurrencia vive aplanada en columnas recurring_* anulables.
type FinanceRepo struct {
	q       Querier
	builder squirrel.StatementBuilderType
}

// NewFinanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{
		q:       q,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persiste un nuevo registro de caja. Seq lo asigna la base (bigserial)
// y queda escrito de vuelta en la entidad.
func (r *FinanceRepo) Create(record *entity.FinanceRecord) error {
	freq, nextDate, endDate, isActive := recurringValues(record.Recurring)
	query := `
		INSERT INTO finance_records (id, type, category, subcategory, description, amount, date,
			payment_method, reference, notes, tags, source_type, source_id, is_recurring,
			recurring_frequency, recurring_next_date, recurring_end_date, recurring_is_active,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		record.ID, record.Type, record.Category, record.Subcategory, record.Description,
		record.Amount, record.Date, record.PaymentMethod, record.Reference, record.Notes,
		record.Tags, record.SourceType, record.SourceID, record.IsRecurring,
		freq, nextDate, endDate, isActive,
		record.CreatedBy, record.CreatedAt, record.UpdatedAt,
	).Scan(&record.Seq)
	if err != nil {
		return fmt.Errorf("insert finance record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de caja por ID.
func (r *FinanceRepo) GetByID(id string) (*entity.FinanceRecord, error) {
	query := `SELECT ` + financeColumns + ` FROM finance_records WHERE id = $1`
	var row financeRow
	err := pgxscan.Get(context.Background(), r.q, &row, query, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance record: %w", err)
	}
	rec := row.toEntity()
	return &rec, nil
}

// Update actualiza un registro de caja existente. Seq y created_* no cambian.
func (r *FinanceRepo) Update(record *entity.FinanceRecord) error {
	freq, nextDate, endDate, isActive := recurringValues(record.Recurring)
	query := `
		UPDATE finance_records SET type = $2, category = $3, subcategory = $4, description = $5,
			amount = $6, date = $7, payment_method = $8, reference = $9, notes = $10, tags = $11,
			source_type = $12, source_id = $13, is_recurring = $14,
			recurring_frequency = $15, recurring_next_date = $16, recurring_end_date = $17,
			recurring_is_active = $18, updated_at = $19
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		record.ID, record.Type, record.Category, record.Subcategory, record.Description,
		record.Amount, record.Date, record.PaymentMethod, record.Reference, record.Notes,
		record.Tags, record.SourceType, record.SourceID, record.IsRecurring,
		freq, nextDate, endDate, isActive,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update finance record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro de caja por ID.
func (r *FinanceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM finance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete finance record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista registros filtrados, más recientes primero, con total antes de truncar.
func (r *FinanceRepo) List(filter repository.FinanceFilter) (*repository.ListResult[entity.FinanceRecord], error) {
	ctx := context.Background()
	page := filter.Page.Normalize()

	countSQL, countArgs, err := applyFinanceFilter(r.builder.Select("COUNT(*)").From("finance_records"), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count finance records: %w", err)
	}

	q := applyFinanceFilter(r.builder.Select(financeColumnsList...).From("finance_records"), filter).
		OrderBy("date DESC", "seq ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []financeRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select finance records: %w", err)
	}
	items := make([]entity.FinanceRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return &repository.ListResult[entity.FinanceRecord]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// ListAll lista todos los registros que pasan el filtro, sin paginar.
// Alimenta agregados y exports; la paginación del filtro se ignora.
func (r *FinanceRepo) ListAll(filter repository.FinanceFilter) ([]entity.FinanceRecord, error) {
	q := applyFinanceFilter(r.builder.Select(financeColumnsList...).From("finance_records"), filter).
		OrderBy("date DESC", "seq ASC")
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	var rows []financeRow
	if err := pgxscan.Select(context.Background(), r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select finance records: %w", err)
	}
	items := make([]entity.FinanceRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// applyFinanceFilter agrega los predicados del filtro (AND; vacío o "all" no restringe).
func applyFinanceFilter(q squirrel.SelectBuilder, filter repository.FinanceFilter) squirrel.SelectBuilder {
	if filter.Type != "" && filter.Type != repository.FilterAll {
		q = q.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Category != "" && filter.Category != repository.FilterAll {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.PaymentMethod != "" && filter.PaymentMethod != repository.FilterAll {
		q = q.Where(squirrel.Eq{"payment_method": filter.PaymentMethod})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"reference": pattern},
		})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.Lt{"date": *filter.DateTo})
	}
	return q
}

// recurringValues aplana la programación para las columnas recurring_*.
func recurringValues(rec *entity.RecurringConfig) (freq *string, nextDate, endDate *time.Time, isActive *bool) {
	if rec == nil {
		return nil, nil, nil, nil
	}
	return &rec.Frequency, &rec.NextDate, rec.EndDate, &rec.IsActive
}

// financeColumnsList columnas de finance_records para el builder (mismo orden que financeRow).
var financeColumnsList = []string{
	"id", "seq", "type", "category", "subcategory", "description", "amount", "date",
	"payment_method", "reference", "notes", "tags", "source_type", "source_id", "is_recurring",
	"recurring_frequency", "recurring_next_date", "recurring_end_date", "recurring_is_active",
	"created_by", "created_at", "updated_at",
}

// financeRow fila de finance_records para scany; la recurrencia llega aplanada.
type financeRow struct {
	ID                 string          `db:"id"`
	Seq                int64           `db:"seq"`
	Type               string          `db:"type"`
	Category           string          `db:"category"`
	Subcategory        string          `db:"subcategory"`
	Description        string          `db:"description"`
	Amount             decimal.Decimal `db:"amount"`
	Date               time.Time       `db:"date"`
	PaymentMethod      string          `db:"payment_method"`
	Reference          string          `db:"reference"`
	Notes              string          `db:"notes"`
	Tags               []string        `db:"tags"`
	SourceType         string          `db:"source_type"`
	SourceID           string          `db:"source_id"`
	IsRecurring        bool            `db:"is_recurring"`
	RecurringFrequency *string         `db:"recurring_frequency"`
	RecurringNextDate  *time.Time      `db:"recurring_next_date"`
	RecurringEndDate   *time.Time      `db:"recurring_end_date"`
	RecurringIsActive  *bool           `db:"recurring_is_active"`
	CreatedBy          string          `db:"created_by"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

func (row financeRow) toEntity() entity.FinanceRecord {
	rec := entity.FinanceRecord{
		ID:            row.ID,
		Seq:           row.Seq,
		Type:          row.Type,
		Category:      row.Category,
		Subcategory:   row.Subcategory,
		Description:   row.Description,
		Amount:        row.Amount,
		Date:          row.Date,
		PaymentMethod: row.PaymentMethod,
		Reference:     row.Reference,
		Notes:         row.Notes,
		Tags:          row.Tags,
		SourceType:    row.SourceType,
		SourceID:      row.SourceID,
		IsRecurring:   row.IsRecurring,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.IsRecurring && row.RecurringFrequency != nil {
		cfg := &entity.RecurringConfig{
			Frequency: *row.RecurringFrequency,
			EndDate:   row.RecurringEndDate,
		}
		if row.RecurringNextDate != nil {
			cfg.NextDate = *row.RecurringNextDate
		}
		if row.RecurringIsActive != nil {
			cfg.IsActive = *row.RecurringIsActive
		}
		rec.Recurring = cfg
	}
	return rec
}
