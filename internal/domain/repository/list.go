package repository

// FilterAll es el valor comodín de un filtro: no impone restricción,
// igual que dejar el campo vacío.
const FilterAll = "all"

// Page describe la paginación pedida. Page empieza en 1.
type Page struct {
	Page  int
	Limit int
}

// Normalize aplica los defaults: página 1, límite 20, tope 100.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

// Offset devuelve el desplazamiento SQL equivalente.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListResult es una página de resultados junto con el total de coincidencias
// antes de truncar por paginación.
type ListResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}
