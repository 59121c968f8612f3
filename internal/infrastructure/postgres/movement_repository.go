package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, seq, part_id, type, quantity, previous_stock, new_stock,
	reason, reference, date, created_by, created_at`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q       Querier
	builder squirrel.StatementBuilderType
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{
		q:       q,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create registra un movimiento en el historial. Seq lo asigna la base
// (bigserial) y queda escrito de vuelta en la entidad.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, part_id, type, quantity, previous_stock, new_stock,
			reason, reference, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		movement.ID, movement.PartID, movement.Type, movement.Quantity,
		movement.PreviousStock, movement.NewStock, movement.Reason, movement.Reference,
		movement.Date, movement.CreatedBy, movement.CreatedAt,
	).Scan(&movement.Seq)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List lista movimientos filtrados, más recientes primero, con total antes de truncar.
func (r *MovementRepo) List(filter repository.MovementFilter) (*repository.ListResult[entity.StockMovement], error) {
	ctx := context.Background()
	page := filter.Page.Normalize()

	countSQL, countArgs, err := applyMovementFilter(r.builder.Select("COUNT(*)").From("stock_movements"), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count movements: %w", err)
	}

	q := applyMovementFilter(r.builder.Select(movementColumnsList...).From("stock_movements"), filter).
		OrderBy("date DESC", "seq ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []movementRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}
	items := make([]entity.StockMovement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return &repository.ListResult[entity.StockMovement]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// ListByPart devuelve el historial completo de un repuesto en orden de
// aplicación (seq ascendente), sin paginar.
func (r *MovementRepo) ListByPart(partID string) ([]entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE part_id = $1 ORDER BY seq ASC`
	var rows []movementRow
	if err := pgxscan.Select(context.Background(), r.q, &rows, query, partID); err != nil {
		return nil, fmt.Errorf("select part movements: %w", err)
	}
	items := make([]entity.StockMovement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// applyMovementFilter agrega los predicados del filtro (AND; vacío o "all" no restringe).
func applyMovementFilter(q squirrel.SelectBuilder, filter repository.MovementFilter) squirrel.SelectBuilder {
	if filter.PartID != "" && filter.PartID != repository.FilterAll {
		q = q.Where(squirrel.Eq{"part_id": filter.PartID})
	}
	if filter.Type != "" && filter.Type != repository.FilterAll {
		q = q.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"reason": pattern},
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

// movementColumnsList columnas de stock_movements para el builder (mismo orden que movementRow).
var movementColumnsList = []string{
	"id", "seq", "part_id", "type", "quantity", "previous_stock", "new_stock",
	"reason", "reference", "date", "created_by", "created_at",
}

// movementRow fila de stock_movements para scany.
type movementRow struct {
	ID            string    `db:"id"`
	Seq           int64     `db:"seq"`
	PartID        string    `db:"part_id"`
	Type          string    `db:"type"`
	Quantity      int64     `db:"quantity"`
	PreviousStock int64     `db:"previous_stock"`
	NewStock      int64     `db:"new_stock"`
	Reason        string    `db:"reason"`
	Reference     string    `db:"reference"`
	Date          time.Time `db:"date"`
	CreatedBy     string    `db:"created_by"`
	CreatedAt     time.Time `db:"created_at"`
}

func (row movementRow) toEntity() entity.StockMovement {
	return entity.StockMovement(row)
}
