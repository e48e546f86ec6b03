package domain

import "time"

// PaymentStatus is persisted as a small integer with exactly three
// stable values. PENDING is the only non-terminal state.
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = 1
	PaymentStatusPaid    PaymentStatus = 2
	PaymentStatusFailed  PaymentStatus = 3
)

// Label returns the display text for a status.
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status may never change again.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

type Payment struct {
	ID            int64         `json:"id,string" form:"id"`
	ProductID     int64         `gorm:"index" json:"product_id,string" form:"product_id"`
	UserID        int64         `gorm:"index" json:"user_id,string" form:"user_id"`
	PaymentMethod string        `gorm:"size:64" json:"payment_method" form:"payment_method"`
	Amount        float64       `json:"amount" form:"amount"`
	Status        PaymentStatus `gorm:"index" json:"status" form:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TableName Specify table name
func (Payment) TableName() string {
	return "payments"
}
