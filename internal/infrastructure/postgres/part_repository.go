package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/entity"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, part_number, name, description, category, location, warehouse_id, unit,
	unit_price, minimum_stock, maximum_stock, current_stock,
	supplier_name, supplier_contact, supplier_phone, supplier_email, created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q       Querier
	builder squirrel.StatementBuilderType
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{
		q:       q,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persiste un nuevo repuesto con su stock inicial ya materializado.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, part_number, name, description, category, location, warehouse_id, unit,
			unit_price, minimum_stock, maximum_stock, current_stock,
			supplier_name, supplier_contact, supplier_phone, supplier_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.PartNumber, part.Name, part.Description, part.Category, part.Location,
		part.WarehouseID, part.Unit, part.UnitPrice, part.MinimumStock, part.MaximumStock,
		part.CurrentStock, part.Supplier.Name, part.Supplier.Contact, part.Supplier.Phone,
		part.Supplier.Email, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	return r.scanPart(r.q.QueryRow(context.Background(), query, id), "get part")
}

// GetForUpdate obtiene un repuesto y bloquea su fila hasta el fin de la transacción.
// Solo tiene sentido cuando el repo está atado a una tx (vía TxRunner).
func (r *PartRepo) GetForUpdate(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1 FOR UPDATE`
	return r.scanPart(r.q.QueryRow(context.Background(), query, id), "get part for update")
}

func (r *PartRepo) scanPart(row pgx.Row, op string) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.PartNumber, &p.Name, &p.Description, &p.Category, &p.Location,
		&p.WarehouseID, &p.Unit, &p.UnitPrice, &p.MinimumStock, &p.MaximumStock,
		&p.CurrentStock, &p.Supplier.Name, &p.Supplier.Contact, &p.Supplier.Phone,
		&p.Supplier.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Update actualiza los datos de un repuesto. No toca current_stock: el stock
// solo cambia vía movimientos (UpdateStock dentro del TxRunner).
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET part_number = $2, name = $3, description = $4, category = $5, location = $6,
			warehouse_id = $7, unit = $8, unit_price = $9, minimum_stock = $10, maximum_stock = $11,
			supplier_name = $12, supplier_contact = $13, supplier_phone = $14, supplier_email = $15,
			updated_at = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		part.ID, part.PartNumber, part.Name, part.Description, part.Category, part.Location,
		part.WarehouseID, part.Unit, part.UnitPrice, part.MinimumStock, part.MaximumStock,
		part.Supplier.Name, part.Supplier.Contact, part.Supplier.Phone, part.Supplier.Email,
		part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija la proyección current_stock del repuesto.
func (r *PartRepo) UpdateStock(id string, newStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	return nil
}

// List lista repuestos filtrados con paginación y total antes de truncar.
func (r *PartRepo) List(filter repository.PartFilter) (*repository.ListResult[entity.Part], error) {
	ctx := context.Background()
	page := filter.Page.Normalize()

	countSQL, countArgs, err := applyPartFilter(r.builder.Select("COUNT(*)").From("parts"), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count parts: %w", err)
	}

	q := applyPartFilter(r.builder.Select(partColumnsList...).From("parts"), filter).
		OrderBy("created_at DESC", "seq ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []partRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select parts: %w", err)
	}
	items := make([]entity.Part, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return &repository.ListResult[entity.Part]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// ListAll lista todos los repuestos que pasan el filtro, sin paginar.
// Alimenta agregados y exports; la paginación del filtro se ignora.
func (r *PartRepo) ListAll(filter repository.PartFilter) ([]entity.Part, error) {
	q := applyPartFilter(r.builder.Select(partColumnsList...).From("parts"), filter).
		OrderBy("created_at DESC", "seq ASC")
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	var rows []partRow
	if err := pgxscan.Select(context.Background(), r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select parts: %w", err)
	}
	items := make([]entity.Part, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// Delete elimina un repuesto; su historial de movimientos cae por FK en cascada.
func (r *PartRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// applyPartFilter agrega los predicados del filtro (AND; vacío o "all" no restringe).
func applyPartFilter(q squirrel.SelectBuilder, filter repository.PartFilter) squirrel.SelectBuilder {
	if filter.Category != "" && filter.Category != repository.FilterAll {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.WarehouseID != "" && filter.WarehouseID != repository.FilterAll {
		q = q.Where(squirrel.Eq{"warehouse_id": filter.WarehouseID})
	}
	switch filter.StockStatus {
	case entity.StockStatusOutOfStock:
		q = q.Where("current_stock = 0")
	case entity.StockStatusLowStock:
		q = q.Where("current_stock > 0 AND current_stock <= minimum_stock")
	case entity.StockStatusNormal:
		q = q.Where("current_stock > minimum_stock")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"part_number": pattern},
		})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.Lt{"created_at": *filter.DateTo})
	}
	return q
}

// partColumnsList columnas de parts para el builder (mismo orden que partRow).
var partColumnsList = []string{
	"id", "part_number", "name", "description", "category", "location", "warehouse_id", "unit",
	"unit_price", "minimum_stock", "maximum_stock", "current_stock",
	"supplier_name", "supplier_contact", "supplier_phone", "supplier_email", "created_at", "updated_at",
}

// partRow fila de parts para scany; la entidad de dominio no carga tags de DB.
type partRow struct {
	ID              string          `db:"id"`
	PartNumber      string          `db:"part_number"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Location        string          `db:"location"`
	WarehouseID     string          `db:"warehouse_id"`
	Unit            string          `db:"unit"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	MinimumStock    int64           `db:"minimum_stock"`
	MaximumStock    *int64          `db:"maximum_stock"`
	CurrentStock    int64           `db:"current_stock"`
	SupplierName    string          `db:"supplier_name"`
	SupplierContact string          `db:"supplier_contact"`
	SupplierPhone   string          `db:"supplier_phone"`
	SupplierEmail   string          `db:"supplier_email"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (row partRow) toEntity() entity.Part {
	return entity.Part{
		ID:           row.ID,
		PartNumber:   row.PartNumber,
		Name:         row.Name,
		Description:  row.Description,
		Category:     row.Category,
		Location:     row.Location,
		WarehouseID:  row.WarehouseID,
		Unit:         row.Unit,
		UnitPrice:    row.UnitPrice,
		MinimumStock: row.MinimumStock,
		MaximumStock: row.MaximumStock,
		CurrentStock: row.CurrentStock,
		Supplier: entity.Supplier{
			Name:    row.SupplierName,
			Contact: row.SupplierContact,
			Phone:   row.SupplierPhone,
			Email:   row.SupplierEmail,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
