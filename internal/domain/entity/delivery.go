package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryStatus is either Logged or Received.
type DeliveryStatus string

const (
	DeliveryLogged   DeliveryStatus = "Logged"
	DeliveryReceived DeliveryStatus = "Received"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// Delivery is a parcel logged for a tenant. Status and CODPaid advance independently.
type Delivery struct {
	ID           uint
	UserID       uint
	Courier      string
	TrackingCode string
	IsCOD        bool
	CODAmount    *decimal.Decimal // Set exactly when IsCOD is true.
	CODPaid      bool
	Status       DeliveryStatus
	ReceivedAt   *time.Time
	CreatedAt    time.Time
}

// MarkReceived moves the delivery to Received and stamps the received time.
func (d *Delivery) MarkReceived(at time.Time) {
	d.Status = DeliveryReceived
	d.ReceivedAt = &at
}
