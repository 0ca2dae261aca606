package dto

// CreateCompanyRequest entrada para registrar un restaurante. Name y Category son obligatorios.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// UpdateCompanyRequest actualización parcial de una empresa.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
}

// SelectCompanyRequest cambio de empresa activa.
type SelectCompanyRequest struct {
	ID string `json:"id"`
}
