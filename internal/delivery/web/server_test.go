package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"

	"portal/config"
	webmiddleware "portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/router"
	"portal/internal/delivery/web/router/handler"
	"portal/internal/domain/entity"
	"portal/internal/infra/auth"
	"portal/internal/infra/metrics"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/infra/receipt"
	"portal/internal/infra/storage"
	"portal/internal/usecase"
	"portal/internal/usecase/impl"
)

// recordingPublisher captures receipt events instead of mailing them
type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.ReceiptEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event *entity.ReceiptEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) titles() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	titles := make([]string, 0, len(p.events))
	for _, event := range p.events {
		titles = append(titles, event.Title)
	}

	return titles
}

type testPortal struct {
	server    *httptest.Server
	auth      usecase.AuthUsecase
	publisher *recordingPublisher
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://portal.test"
	cfg.HTTP.MaxRequestBodySize = "10MB"
	cfg.Session = config.SessionConfig{Secret: "test-secret", CookieName: "portal_session"}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.Storage.BucketURL = "mem://"

	return cfg
}

func newTestPortal(t *testing.T, cfg *config.Config) *testPortal {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := postgres.OpenSQLite(":memory:", logger, false)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	lc := fxtest.NewLifecycle(t)
	photos, err := storage.NewPhotoStorage(storage.PhotoStorageParams{Lc: lc, Ctx: ctx, Config: cfg, Logger: logger})
	require.NoError(t, err)

	sessions, err := auth.NewJWTSessionService(cfg)
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	buildingRepo := postgres.NewBuildingRepository(db)
	maintenanceRepo := postgres.NewMaintenanceRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	deliveryRepo := postgres.NewDeliveryRepository(db)

	publisher := &recordingPublisher{}
	notifier := impl.NewReceiptNotifier(impl.ReceiptNotifierParams{Publisher: publisher, Logger: logger})

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager: txManager, UserRepo: userRepo, Hasher: auth.NewBcryptHasher(cfg), Sessions: sessions, Logger: logger,
	})
	session := webmiddleware.NewSessionMiddleware(authUC, cfg)

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(authUC, session, logger),
		MaintenanceHandler: handler.NewMaintenanceHandler(impl.NewMaintenanceService(impl.MaintenanceServiceParams{
			Repo: maintenanceRepo, Storage: photos, Notifier: notifier, Logger: logger,
		})),
		PaymentHandler: handler.NewPaymentHandler(impl.NewPaymentService(impl.PaymentServiceParams{
			TxManager: txManager, Repo: paymentRepo, Notifier: notifier, Logger: logger,
		})),
		DeliveryHandler: handler.NewDeliveryHandler(impl.NewDeliveryService(impl.DeliveryServiceParams{
			TxManager: txManager, Repo: deliveryRepo, Notifier: notifier, Logger: logger,
		})),
		ReceiptHandler: handler.NewReceiptHandler(impl.NewReceiptService(impl.ReceiptServiceParams{
			Config: cfg, UserRepo: userRepo, MaintenanceRepo: maintenanceRepo, PaymentRepo: paymentRepo,
			DeliveryRepo: deliveryRepo, Renderer: receipt.NewRenderer(cfg, nil, logger), Logger: logger,
		})),
		AdminHandler: handler.NewAdminHandler(impl.NewAdminService(impl.AdminServiceParams{
			TxManager: txManager, UserRepo: userRepo, BuildingRepo: buildingRepo, MaintenanceRepo: maintenanceRepo,
			PaymentRepo: paymentRepo, DeliveryRepo: deliveryRepo, Logger: logger,
		})),
		SessionMiddleware: session,
		Gatherer:          metrics.NewRegistry(metrics.NewReceiptMetrics()),
	}

	e, err := NewEcho(cfg, logger, routerParams)
	require.NoError(t, err)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &testPortal{server: server, auth: authUC, publisher: publisher}
}

// browser keeps cookies and stops at the first redirect so tests can inspect it
type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func (p *testPortal) newBrowser(t *testing.T) *browser {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &browser{
		t:    t,
		base: p.server.URL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

type page struct {
	status   int
	location string
	header   http.Header
	body     string
}

func (b *browser) do(req *http.Request) page {
	b.t.Helper()

	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)

	return page{status: resp.StatusCode, location: resp.Header.Get("Location"), header: resp.Header, body: string(body)}
}

func (b *browser) get(path string) page {
	b.t.Helper()

	req, err := http.NewRequest(http.MethodGet, b.base+path, nil)
	require.NoError(b.t, err)

	return b.do(req)
}

func (b *browser) post(path string, form url.Values) page {
	b.t.Helper()

	req, err := http.NewRequest(http.MethodPost, b.base+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return b.do(req)
}

func (b *browser) postMultipart(path string, fields map[string]string, fileField, fileName string, content []byte) page {
	b.t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(b.t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(b.t, err)
		_, err = part.Write(content)
		require.NoError(b.t, err)
	}
	require.NoError(b.t, w.Close())

	req, err := http.NewRequest(http.MethodPost, b.base+path, &buf)
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return b.do(req)
}

func (b *browser) registerAndLogin(email, password string) {
	b.t.Helper()

	b.post("/register", url.Values{"email": {email}, "password": {password}})
	res := b.post("/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(b.t, http.StatusSeeOther, res.status)
	require.Equal(b.t, "/dashboard", res.location)
}

func TestRegisterAndLogin(t *testing.T) {
	p := newTestPortal(t, newTestConfig())
	b := p.newBrowser(t)

	res := b.post("/register", url.Values{"email": {"A@X.com"}, "password": {"pw1"}})
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/login?msg=Account+created%2C+please+log+in", res.location)

	res = b.post("/register", url.Values{"email": {"a@x.com"}, "password": {"other"}})
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/login?msg=Email+already+registered", res.location)

	res = b.get("/login?msg=Email+already+registered")
	assert.Contains(t, res.body, "Email already registered")

	for range 3 {
		res = b.post("/login", url.Values{"email": {"a@x.com"}, "password": {"wrong"}})
		assert.Equal(t, "/login?msg=Invalid+credentials", res.location)
	}

	res = b.get("/dashboard")
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Contains(t, res.body, `href="/login"`)

	res = b.post("/login", url.Values{"email": {"a@x.com"}, "password": {"pw1"}})
	assert.Equal(t, "/dashboard", res.location)

	res = b.get("/dashboard")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "Welcome, a@x.com")

	res = b.get("/logout")
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, http.StatusUnauthorized, b.get("/dashboard").status)
}

func TestMaintenanceScenario(t *testing.T) {
	p := newTestPortal(t, newTestConfig())
	tenant := p.newBrowser(t)
	tenant.registerAndLogin("a@x.com", "pw1")

	res := tenant.postMultipart("/maintenance", map[string]string{"note": "leaky faucet"}, "", "", nil)
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/maintenance?receipt=1", res.location)

	res = tenant.get("/maintenance?receipt=1")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "leaky faucet")
	assert.Contains(t, res.body, "Pending")
	assert.Contains(t, res.body, "/receipt/maintenance/1.pdf")

	res = tenant.get("/receipt/maintenance/1.pdf")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "application/pdf", res.header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="maintenance_1.pdf"`, res.header.Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(res.body, "%PDF"))

	assert.Equal(t, []string{"Maintenance Receipt"}, p.publisher.titles())

	other := p.newBrowser(t)
	other.registerAndLogin("b@x.com", "pw2")
	assert.Equal(t, http.StatusNotFound, other.get("/receipt/maintenance/1.pdf").status)
	assert.NotContains(t, other.get("/maintenance").body, "leaky faucet")

	res = tenant.postMultipart("/maintenance", map[string]string{"note": "   "}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestMaintenancePhoto(t *testing.T) {
	p := newTestPortal(t, newTestConfig())
	tenant := p.newBrowser(t)
	tenant.registerAndLogin("a@x.com", "pw1")

	gif := []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

	res := tenant.postMultipart("/maintenance", map[string]string{"note": "broken window"}, "photo", "window pic.gif", gif)
	require.Equal(t, http.StatusSeeOther, res.status)

	res = tenant.get("/maintenance/1/photo")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "image/gif", res.header.Get("Content-Type"))
	assert.Equal(t, string(gif), res.body)

	other := p.newBrowser(t)
	other.registerAndLogin("b@x.com", "pw2")
	assert.Equal(t, http.StatusNotFound, other.get("/maintenance/1/photo").status)

	res = tenant.postMultipart("/maintenance", map[string]string{"note": "not a photo"}, "photo", "notes.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestPaymentScenario(t *testing.T) {
	p := newTestPortal(t, newTestConfig())
	tenant := p.newBrowser(t)
	tenant.registerAndLogin("a@x.com", "pw1")

	res := tenant.post("/payments", url.Values{"description": {"Rent"}, "amount": {"1200.5"}, "due_date": {"2025-07-01"}})
	assert.Equal(t, "/payments?receipt=1", res.location)

	res = tenant.post("/payments", url.Values{"description": {"Rent"}, "amount": {"lots"}, "due_date": {"2025-07-01"}})
	assert.Equal(t, http.StatusBadRequest, res.status)

	for range 2 {
		res = tenant.post("/payments/1/mark-paid", nil)
		assert.Equal(t, http.StatusSeeOther, res.status)
		assert.Equal(t, "/payments", res.location)
	}

	res = tenant.get("/payments")
	assert.Contains(t, res.body, "1200.50")
	assert.Contains(t, res.body, "Paid")
	assert.NotContains(t, res.body, "/payments/1/mark-paid")

	res = tenant.get("/receipt/payment/1.pdf")
	assert.Equal(t, `attachment; filename="payment_1.pdf"`, res.header.Get("Content-Disposition"))

	assert.Equal(t, []string{"Invoice Created", "Payment Receipt", "Payment Receipt"}, p.publisher.titles())

	other := p.newBrowser(t)
	other.registerAndLogin("b@x.com", "pw2")
	assert.Equal(t, http.StatusNotFound, other.post("/payments/1/mark-paid", nil).status)
	assert.Equal(t, http.StatusNotFound, other.post("/payments/abc/mark-paid", nil).status)
}

func TestDeliveryScenario(t *testing.T) {
	p := newTestPortal(t, newTestConfig())
	tenant := p.newBrowser(t)
	tenant.registerAndLogin("a@x.com", "pw1")

	res := tenant.post("/deliveries", url.Values{"courier": {"DHL"}, "tracking": {"T-1"}, "cod_amount": {"99"}})
	assert.Equal(t, "/deliveries?receipt=1", res.location)

	res = tenant.post("/deliveries", url.Values{"courier": {"UPS"}, "tracking": {"T-2"}, "is_cod": {"on"}, "cod_amount": {"12.5"}})
	assert.Equal(t, "/deliveries?receipt=2", res.location)

	res = tenant.post("/deliveries", url.Values{"courier": {"UPS"}, "tracking": {"T-3"}, "is_cod": {"on"}})
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = tenant.post("/deliveries", url.Values{"courier": {strings.Repeat("c", 65)}, "tracking": {"T-4"}})
	assert.Equal(t, http.StatusBadRequest, res.status)

	assert.Equal(t, http.StatusBadRequest, tenant.post("/deliveries/1/mark-cod-paid", nil).status)

	for range 2 {
		assert.Equal(t, http.StatusSeeOther, tenant.post("/deliveries/2/mark-cod-paid", nil).status)
	}
	assert.Equal(t, http.StatusSeeOther, tenant.post("/deliveries/1/mark-received", nil).status)

	res = tenant.get("/deliveries")
	assert.Contains(t, res.body, "12.50")
	assert.Contains(t, res.body, "Received")
	assert.NotContains(t, res.body, "/deliveries/1/mark-received")
	assert.NotContains(t, res.body, "/deliveries/2/mark-cod-paid")

	res = tenant.get("/receipt/delivery/2.pdf")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, http.StatusNotFound, tenant.get("/receipt/delivery/2.txt").status)

	assert.Equal(t, []string{"Delivery Logged", "Delivery Logged"}, p.publisher.titles())
}

func TestAdminScenario(t *testing.T) {
	p := newTestPortal(t, newTestConfig())

	created, err := p.auth.BootstrapAdmin(context.Background(), "admin@x.com", "secret")
	require.NoError(t, err)
	require.True(t, created)

	tenant := p.newBrowser(t)
	tenant.registerAndLogin("a@x.com", "pw1")
	assert.Equal(t, http.StatusForbidden, tenant.get("/admin").status)
	assert.Equal(t, http.StatusForbidden, tenant.post("/admin/buildings", url.Values{"name": {"Sneaky"}}).status)

	anonymous := p.newBrowser(t)
	assert.Equal(t, http.StatusUnauthorized, anonymous.get("/admin").status)

	admin := p.newBrowser(t)
	res := admin.post("/login", url.Values{"email": {"admin@x.com"}, "password": {"secret"}})
	require.Equal(t, "/dashboard", res.location)

	res = admin.post("/admin/buildings", url.Values{"name": {" Maple Court "}, "address": {"1 Maple St"}})
	assert.Equal(t, "/admin/buildings", res.location)

	res = admin.post("/admin/buildings", url.Values{"name": {"Maple Court"}})
	assert.Equal(t, "/admin/buildings?msg=exists", res.location)

	assert.Equal(t, http.StatusBadRequest, admin.post("/admin/buildings", url.Values{"name": {"   "}}).status)

	res = admin.get("/admin/tenants")
	assert.Contains(t, res.body, "a@x.com")
	assert.NotContains(t, res.body, "<td>admin@x.com</td>")
	assert.Contains(t, res.body, "Maple Court")

	res = admin.post("/admin/tenants/2/assign-building", url.Values{"building_id": {"1"}})
	assert.Equal(t, "/admin/tenants", res.location)

	// The admin account is not a tenant, so assigning it is a silent no-op
	res = admin.post("/admin/tenants", url.Values{"user_id": {"1"}, "building_id": {"1"}})
	assert.Equal(t, "/admin/tenants", res.location)

	assert.Contains(t, tenant.get("/dashboard").body, "Building: Maple Court, 1 Maple St")

	res = admin.get("/admin")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "<tr><th>Tenants</th><td>1</td></tr>")
	assert.Contains(t, res.body, "<tr><th>Buildings</th><td>1</td></tr>")

	res = admin.post("/admin/tenants/2/assign-building", url.Values{"building_id": {"0"}})
	assert.Equal(t, "/admin/tenants", res.location)
	assert.NotContains(t, tenant.get("/dashboard").body, "Maple Court")
}

func TestHealthAndMetrics(t *testing.T) {
	p := newTestPortal(t, newTestConfig())
	b := p.newBrowser(t)

	res := b.get("/health")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"status":"ok"}`, res.body)

	res = b.get("/metrics")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "go_goroutines")

	res = b.get("/nowhere")
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestLoginRateLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.LoginRateLimit = 1

	p := newTestPortal(t, cfg)
	b := p.newBrowser(t)

	statuses := make([]int, 0, 3)
	for range 3 {
		statuses = append(statuses, b.post("/login", url.Values{"email": {"a@x.com"}, "password": {"nope"}}).status)
	}

	assert.Equal(t, http.StatusSeeOther, statuses[0])
	assert.Contains(t, statuses, http.StatusTooManyRequests)
}
