package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"portal/internal/usecase"
)

// ReceiptHandler serves receipt PDFs for the caller's own records.
type ReceiptHandler struct {
	uc usecase.ReceiptUsecase
}

// NewReceiptHandler is the constructor for ReceiptHandler, injected by Fx.
func NewReceiptHandler(uc usecase.ReceiptUsecase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

func (h *ReceiptHandler) Maintenance(c echo.Context) error {
	return h.serve(c, h.uc.MaintenanceReceipt)
}

func (h *ReceiptHandler) Payment(c echo.Context) error {
	return h.serve(c, h.uc.PaymentReceipt)
}

func (h *ReceiptHandler) Delivery(c echo.Context) error {
	return h.serve(c, h.uc.DeliveryReceipt)
}

type receiptFunc func(ctx context.Context, ownerID, id uint) (*usecase.ReceiptFile, error)

func (h *ReceiptHandler) serve(c echo.Context, build receiptFunc) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := receiptID(c)
	if err != nil {
		return err
	}

	file, err := build(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))

	return c.Blob(http.StatusOK, "application/pdf", file.Data)
}
