package entity

import "time"

// MaintenanceStatus tracks a maintenance request through its lifecycle.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "Pending"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

func (s MaintenanceStatus) String() string {
	return string(s)
}

// MaintenanceRequest is a tenant-filed repair request.
type MaintenanceRequest struct {
	ID        uint
	UserID    uint
	Note      string
	PhotoKey  string // Storage key of the attached photo, empty when none was uploaded.
	Status    MaintenanceStatus
	CreatedAt time.Time
}

// HasPhoto reports whether a photo was stored with the request.
func (m *MaintenanceRequest) HasPhoto() bool {
	return m.PhotoKey != ""
}
