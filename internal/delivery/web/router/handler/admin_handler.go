package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"
)

type buildingForm struct {
	Name    string `form:"name" validate:"max=255"`
	Address string `form:"address" validate:"max=255"`
}

// AdminHandler serves the admin views.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) Index(c echo.Context) error {
	counts, err := h.uc.Counts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, view.PageAdmin, "Admin", counts)
}

func (h *AdminHandler) Tenants(c echo.Context) error {
	ctx := c.Request().Context()

	tenants, err := h.uc.ListTenants(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	buildings, err := h.uc.ListBuildings(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, view.PageTenants, "Tenants", view.TenantsData{
		Tenants:   tenants,
		Buildings: buildings,
	})
}

// AssignBuilding handles POST /admin/tenants/:id/assign-building. building_id 0 clears the assignment.
func (h *AdminHandler) AssignBuilding(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return h.assign(c, userID)
}

// AssignBuildingForm handles POST /admin/tenants with the tenant in the user_id field.
func (h *AdminHandler) AssignBuildingForm(c echo.Context) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("user_id")), 10, 0)
	if err != nil {
		return domainerrors.ErrBadRequest.WithDetails("user_id must be a number")
	}

	return h.assign(c, uint(userID))
}

func (h *AdminHandler) assign(c echo.Context, userID uint) error {
	raw := strings.TrimSpace(c.FormValue("building_id"))
	parsed, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return domainerrors.ErrBadRequest.WithDetails("building_id must be a number")
	}

	var buildingID *uint
	if parsed != 0 {
		id := uint(parsed)
		buildingID = &id
	}

	if err := h.uc.AssignBuilding(c.Request().Context(), userID, buildingID); err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/admin/tenants")
}

func (h *AdminHandler) Buildings(c echo.Context) error {
	buildings, err := h.uc.ListBuildings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, view.PageBuildings, "Buildings", view.BuildingsData{Buildings: buildings})
}

// AddBuilding redirects with msg=exists on a duplicate name and fails with 400 on a blank one.
func (h *AdminHandler) AddBuilding(c echo.Context) error {
	var form buildingForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	_, err := h.uc.AddBuilding(c.Request().Context(), usecase.AddBuildingInput{
		Name:    form.Name,
		Address: form.Address,
	})
	if errors.Is(err, domainerrors.ErrBuildingAlreadyExists) {
		return seeOtherWithMsg(c, "/admin/buildings", "exists")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/admin/buildings")
}
