package entity

// Company representa un restaurante (partición) del sistema. Todas las demás
// colecciones se agrupan por Company.ID y siempre existe al menos una empresa.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Logo        string `json:"logo"`
	Description string `json:"description,omitempty"`
}
