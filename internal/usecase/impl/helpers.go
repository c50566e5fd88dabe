// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
)

// requestLogger returns a request-scoped logger if available, otherwise the fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, fallback)
}

// ensureOwner hides records of other tenants behind a generic not-found.
func ensureOwner(ownerID, recordOwnerID uint, what string) error {
	if ownerID != recordOwnerID {
		return domainerrors.ErrNotFound.WithDetails(what)
	}

	return nil
}

// notifyTarget is the address receipts for a record are mailed to.
func notifyTarget(owner *entity.User) string {
	if owner == nil {
		return ""
	}

	return owner.Email
}
