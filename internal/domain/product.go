package domain

import "time"

// Product is a stock-counted item owned by exactly one user. The
// quantity >= 0 invariant is enforced by the payment inventory guard,
// not by the schema.
type Product struct {
	ID        int64     `json:"id,string" form:"id"`
	UserID    int64     `gorm:"index" json:"user_id,string" form:"user_id"`
	Name      string    `gorm:"index" json:"name" form:"name"`
	Quantity  int       `json:"quantity" form:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// Available reports whether any stock is left.
func (p *Product) Available() bool {
	return p.Quantity > 0
}
