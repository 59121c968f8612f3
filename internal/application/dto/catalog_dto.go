package dto

// CatalogsResponse listas de valores que consume la UI para poblar selects.
// Las unidades y tipos de movimiento son cerrados; las categorías y métodos
// de pago son sugerencias, el backend no valida pertenencia.
type CatalogsResponse struct {
	Units             []string `json:"units"`
	MovementTypes     []string `json:"movement_types"`
	PartCategories    []string `json:"part_categories"`
	IncomeCategories  []string `json:"income_categories"`
	ExpenseCategories []string `json:"expense_categories"`
	PaymentMethods    []string `json:"payment_methods"`
	Frequencies       []string `json:"frequencies"`
	StockStatuses     []string `json:"stock_statuses"`
}
