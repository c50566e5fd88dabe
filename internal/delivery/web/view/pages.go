package view

import "portal/internal/domain/entity"

// Page names passed to c.Render
const (
	PageHome        = "home.html"
	PageRegister    = "auth/register.html"
	PageLogin       = "auth/login.html"
	PageDashboard   = "dashboard.html"
	PageMaintenance = "maintenance.html"
	PagePayments    = "payments.html"
	PageDeliveries  = "deliveries.html"
	PageAdmin       = "admin/index.html"
	PageTenants     = "admin/tenants.html"
	PageBuildings   = "admin/buildings.html"
	PageError       = "error.html"
)

// Page is the data every template receives. Data holds the page-specific part.
type Page struct {
	Title string
	User  *entity.User
	// Msg is the ?msg= flash carried by a redirect
	Msg  string
	Data any
}

type MaintenanceData struct {
	Rows []*entity.MaintenanceRequest
	// Receipt is the id of the record just created, offered as a download link
	Receipt string
}

type PaymentsData struct {
	Rows    []*entity.Payment
	Receipt string
}

type DeliveriesData struct {
	Rows    []*entity.Delivery
	Receipt string
}

type TenantsData struct {
	Tenants   []*entity.User
	Buildings []*entity.Building
}

type BuildingsData struct {
	Buildings []*entity.Building
}

type ErrorData struct {
	Status  int
	Message string
	Details string
}
