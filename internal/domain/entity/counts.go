package entity

// Counts holds the per-entity totals shown on the admin overview.
type Counts struct {
	Tenants     int64
	Buildings   int64
	Maintenance int64
	Payments    int64
	Deliveries  int64
}
