package domain

import "time"

// Category is a node in a company's category tree.
// ParentID is nil for root categories. The tree is kept acyclic at
// creation time; see CategoryService.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}
