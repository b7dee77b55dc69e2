package dto

import "time"

// CreateCompanyRequest alta de administradora.
type CreateCompanyRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CompanyResponse representación pública de una administradora.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de administradoras.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ClientResponse representación pública de un afiliado.
type ClientResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse listado paginado de afiliados.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
