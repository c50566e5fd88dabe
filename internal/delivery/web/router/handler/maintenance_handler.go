package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"
)

// MaintenanceHandler serves the tenant's maintenance requests.
type MaintenanceHandler struct {
	uc usecase.MaintenanceUsecase
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler, injected by Fx.
func NewMaintenanceHandler(uc usecase.MaintenanceUsecase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

func (h *MaintenanceHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, view.PageMaintenance, "Maintenance", view.MaintenanceData{
		Rows:    rows,
		Receipt: receiptQuery(c),
	})
}

// Create files a request from a multipart form with an optional photo.
func (h *MaintenanceHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	input := usecase.CreateMaintenanceInput{Note: c.FormValue("note")}

	fileHeader, err := c.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return domainerrors.ErrInvalidUpload.WithDetails(err.Error())
	case fileHeader.Filename != "":
		file, err := fileHeader.Open()
		if err != nil {
			return domainerrors.ErrInvalidUpload.WithDetails(err.Error())
		}
		defer file.Close()

		input.Photo = &usecase.Upload{Filename: fileHeader.Filename, Content: file}
	}

	request, err := h.uc.Create(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/maintenance?receipt="+strconv.FormatUint(uint64(request.ID), 10))
}

// Photo streams the photo attached to one of the caller's requests.
func (h *MaintenanceHandler) Photo(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	photo, err := h.uc.Photo(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}
	defer photo.Body.Close()

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")
	if photo.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(photo.Size, 10))
	}

	return c.Stream(http.StatusOK, photo.ContentType, photo.Body)
}
