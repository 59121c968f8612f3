package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/domain"
	"github.com/tallersoft/stockcaja/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// parsePage lee page y limit de la query. Los defaults y el tope los aplica
// Page.Normalize en el caso de uso.
func parsePage(c *fiber.Ctx) repository.Page {
	return repository.Page{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}
}

// parseDateRange lee start_date y end_date (YYYY-MM-DD). Ambos días son
// inclusivos hacia el caller; end_date se convierte a límite exclusivo
// sumando un día, que es como lo esperan los filtros de repositorio.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if v := c.Query("start_date"); v != "" {
		t, perr := time.Parse(dateLayout, v)
		if perr != nil {
			return nil, nil, domain.NewValidationf("start_date inválida: %q (formato YYYY-MM-DD)", v)
		}
		from = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, perr := time.Parse(dateLayout, v)
		if perr != nil {
			return nil, nil, domain.NewValidationf("end_date inválida: %q (formato YYYY-MM-DD)", v)
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	// to ya es exclusivo: para ser válido debe quedar estrictamente después de from.
	if from != nil && to != nil && !to.After(*from) {
		return nil, nil, domain.NewValidation("end_date no puede ser anterior a start_date")
	}
	return from, to, nil
}
