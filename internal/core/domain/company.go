package domain

import "time"

// Company represents a tenant
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TenantURL *string   `json:"tenant_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Address is a branch street address
type Address struct {
	Street       string  `json:"street"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	ZipCode      string  `json:"zip_code"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement,omitempty"`
}

// Branch represents a company location
type Branch struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the required address fields are present
func (a Address) Valid() bool {
	return a.Street != "" && a.Neighborhood != "" && a.City != "" &&
		a.Country != "" && a.ZipCode != "" && a.Number != ""
}
