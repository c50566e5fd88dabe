package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"portal/internal/delivery/web/view"
	"portal/internal/usecase"
)

type deliveryForm struct {
	Courier   string `form:"courier" validate:"required,max=64"`
	Tracking  string `form:"tracking" validate:"required,max=100"`
	IsCOD     string `form:"is_cod"`
	CODAmount string `form:"cod_amount"`
}

// DeliveryHandler serves the tenant's deliveries.
type DeliveryHandler struct {
	uc usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

func (h *DeliveryHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, view.PageDeliveries, "Deliveries", view.DeliveriesData{
		Rows:    rows,
		Receipt: receiptQuery(c),
	})
}

// Create logs a delivery. The COD amount is only read when the COD box is ticked.
func (h *DeliveryHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var form deliveryForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	input := usecase.CreateDeliveryInput{
		Courier:  form.Courier,
		Tracking: form.Tracking,
		IsCOD:    checkbox(form.IsCOD),
	}
	if input.IsCOD && strings.TrimSpace(form.CODAmount) != "" {
		amount, err := parseAmount(form.CODAmount)
		if err != nil {
			return err
		}
		input.CODAmount = &amount
	}

	delivery, err := h.uc.Create(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/deliveries?receipt="+strconv.FormatUint(uint64(delivery.ID), 10))
}

func (h *DeliveryHandler) MarkReceived(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.uc.MarkReceived(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/deliveries")
}

// MarkCODPaid fails with 400 on a prepaid delivery.
func (h *DeliveryHandler) MarkCODPaid(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.uc.MarkCODPaid(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/deliveries")
}
