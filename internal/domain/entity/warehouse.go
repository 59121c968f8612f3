package entity

import "time"

// Warehouse representa una bodega o sede donde se almacenan repuestos.
type Warehouse struct {
	ID         string
	Name       string
	Address    string
	Department string // departamento/región, ej. "Antioquia"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
