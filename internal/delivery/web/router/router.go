// Package router contains routing for the portal's web delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/router/handler"
	"portal/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	MaintenanceHandler *handler.MaintenanceHandler
	PaymentHandler     *handler.PaymentHandler
	DeliveryHandler    *handler.DeliveryHandler
	ReceiptHandler     *handler.ReceiptHandler
	AdminHandler       *handler.AdminHandler
	SessionMiddleware  *middleware.SessionMiddleware
	Gatherer           prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	auth        *handler.AuthHandler
	maintenance *handler.MaintenanceHandler
	payment     *handler.PaymentHandler
	delivery    *handler.DeliveryHandler
	receipt     *handler.ReceiptHandler
	admin       *handler.AdminHandler
	session     *middleware.SessionMiddleware
	gatherer    prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:        params.AuthHandler,
		maintenance: params.MaintenanceHandler,
		payment:     params.PaymentHandler,
		delivery:    params.DeliveryHandler,
		receipt:     params.ReceiptHandler,
		admin:       params.AdminHandler,
		session:     params.SessionMiddleware,
		gatherer:    params.Gatherer,
	}
}

// RegisterRoutes sets up every page and form endpoint. loginLimiter guards POST /login.
func (r *router) RegisterRoutes(e *echo.Echo, loginLimiter echo.MiddlewareFunc) {
	// Every route knows the session user when there is one
	e.Use(r.session.Load)

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	e.GET("/", r.auth.Home)
	e.GET("/register", r.auth.RegisterPage)
	e.POST("/register", r.auth.Register)
	e.GET("/login", r.auth.LoginPage)
	e.POST("/login", r.auth.Login, loginLimiter)
	e.GET("/logout", r.auth.Logout)

	// Tenant routes: every record is scoped to the session user
	tenant := []echo.MiddlewareFunc{r.session.RequireLogin, r.session.RequireCapability(entity.CapManageOwnRecords)}

	e.GET("/dashboard", r.auth.Dashboard, tenant...)

	e.GET("/maintenance", r.maintenance.List, tenant...)
	e.POST("/maintenance", r.maintenance.Create, tenant...)
	e.GET("/maintenance/:id/photo", r.maintenance.Photo, tenant...)

	e.GET("/payments", r.payment.List, tenant...)
	e.POST("/payments", r.payment.Create, tenant...)
	e.POST("/payments/:id/mark-paid", r.payment.MarkPaid, tenant...)

	e.GET("/deliveries", r.delivery.List, tenant...)
	e.POST("/deliveries", r.delivery.Create, tenant...)
	e.POST("/deliveries/:id/mark-received", r.delivery.MarkReceived, tenant...)
	e.POST("/deliveries/:id/mark-cod-paid", r.delivery.MarkCODPaid, tenant...)

	e.GET("/receipt/maintenance/:file", r.receipt.Maintenance, tenant...)
	e.GET("/receipt/payment/:file", r.receipt.Payment, tenant...)
	e.GET("/receipt/delivery/:file", r.receipt.Delivery, tenant...)

	// Admin routes require login first, then the admin role
	adminGroup := e.Group("/admin", r.session.RequireLogin, r.session.RequireCapability(entity.CapAdminister))
	{
		adminGroup.GET("", r.admin.Index)
		adminGroup.GET("/tenants", r.admin.Tenants)
		adminGroup.POST("/tenants", r.admin.AssignBuildingForm)
		adminGroup.POST("/tenants/:id/assign-building", r.admin.AssignBuilding)
		adminGroup.GET("/buildings", r.admin.Buildings)
		adminGroup.POST("/buildings", r.admin.AddBuilding)
	}
}
