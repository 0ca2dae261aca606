package entity

// Supplier proveedor de insumos. Rating entre 1 y 5.
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Contact  string `json:"contact"`
	Email    string `json:"email,omitempty"`
	Rating   int    `json:"rating"`
}

// Límites de la calificación de proveedores.
const (
	MinSupplierRating     = 1
	MaxSupplierRating     = 5
	DefaultSupplierRating = 5
)
