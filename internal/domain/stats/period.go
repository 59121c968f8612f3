// Package stats contiene los agregadores puros de inventario y caja.
// Operan sobre snapshots ya cargados; nunca tocan la persistencia.
package stats

import (
	"time"

	"github.com/tallersoft/stockcaja/internal/domain"
)

// Tokens de período reconocidos.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ResolvePeriod traduce un token de período a un rango semiabierto [start, end)
// relativo a now, con semántica de calendario: la semana empieza el lunes,
// mes y año van alineados al calendario. Usa la zona horaria de now.
func ResolvePeriod(period string, now time.Time) (start, end time.Time, err error) {
	loc := now.Location()
	y, m, d := now.Date()

	switch period {
	case PeriodDay:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	case PeriodWeek:
		// time.Weekday cuenta desde domingo; el lunes es el día 1.
		offset := int(now.Weekday()) - 1
		if offset < 0 {
			offset = 6
		}
		start = time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 7)
	case PeriodMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	case PeriodYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}, domain.NewValidationf("período inválido: %q", period)
	}
	return start, end, nil
}

// InWindow reporta si t cae dentro del rango semiabierto [start, end).
func InWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
