package entity

import "time"

// Building groups tenants under one address.
type Building struct {
	ID        uint
	Name      string
	Address   string
	CreatedAt time.Time
}
