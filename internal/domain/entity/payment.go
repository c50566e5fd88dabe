package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is either Unpaid or Paid.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Payment is an amount a tenant owes by a due date.
type Payment struct {
	ID          uint
	UserID      uint
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time // Calendar date, time of day is ignored.
	Status      PaymentStatus
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// MarkPaid moves the payment to Paid and stamps the paid time.
// Calling it again re-stamps PaidAt.
func (p *Payment) MarkPaid(at time.Time) {
	p.Status = PaymentPaid
	p.PaidAt = &at
}
