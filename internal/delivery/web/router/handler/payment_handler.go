package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"
)

type paymentForm struct {
	Description string `form:"description" validate:"required,max=255"`
	Amount      string `form:"amount" validate:"required"`
	DueDate     string `form:"due_date" validate:"required"`
}

// PaymentHandler serves the tenant's payments.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, view.PagePayments, "Payments", view.PaymentsData{
		Rows:    rows,
		Receipt: receiptQuery(c),
	})
}

func (h *PaymentHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var form paymentForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	amount, err := parseAmount(form.Amount)
	if err != nil {
		return err
	}

	dueDate, err := time.Parse(time.DateOnly, strings.TrimSpace(form.DueDate))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("due_date must be a date (YYYY-MM-DD)")
	}

	payment, err := h.uc.Create(c.Request().Context(), user, usecase.CreatePaymentInput{
		Description: form.Description,
		Amount:      amount,
		DueDate:     dueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/payments?receipt="+strconv.FormatUint(uint64(payment.ID), 10))
}

func (h *PaymentHandler) MarkPaid(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.uc.MarkPaid(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return seeOther(c, "/payments")
}

// parseAmount reads a money field, rejecting anything that is not a plain decimal number
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, domainerrors.ErrValidationFailed.WithDetails("amount must be a number")
	}

	return amount, nil
}
