package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/infra/pubsub"
	mockUsecase "portal/internal/mocks/usecase"
)

func testEvent() *entity.ReceiptEvent {
	return &entity.ReceiptEvent{
		To:             "a@x.com",
		Title:          "Delivery Logged",
		Fields:         []entity.ReceiptField{{Label: "Courier", Value: "DHL"}},
		AttachmentName: "delivery_3.pdf",
	}
}

func newTestHandler(sender *mockUsecase.MockReceiptSender) *PushHandler {
	return &PushHandler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		sender: sender,
	}
}

func pushRequest(t *testing.T, body any) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req, httptest.NewRecorder()
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus int
	}{
		{"sent", nil, http.StatusOK},
		{"transport failure is retried", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"invalid event is dropped", domainerrors.ErrValidationFailed.WithDetails("recipient is required"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := mockUsecase.NewMockReceiptSender(t)
			h := newTestHandler(sender)

			msg, err := pubsub.NewPushMessage(testEvent(), "m-1", "req-7", "sub", time.Now())
			require.NoError(t, err)

			sender.EXPECT().
				HandleReceiptEvent(mock.Anything, testEvent()).
				RunAndReturn(func(ctx context.Context, _ *entity.ReceiptEvent) error {
					assert.Equal(t, "req-7", deliverycontext.RequestIDFrom(ctx))

					return tt.sendErr
				})

			req, rec := pushRequest(t, msg)
			c := echo.New().NewContext(req, rec)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedData(t *testing.T) {
	h := newTestHandler(mockUsecase.NewMockReceiptSender(t))

	msg := pubsub.PushMessage{}
	msg.Message.Data = "not base64!"

	req, rec := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	msg, err := pubsub.NewPushMessage(testEvent(), "m-1", "", "sub", time.Now())
	require.NoError(t, err)

	validate := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "https://worker.example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	t.Run("missing header", func(t *testing.T) {
		h := newTestHandler(mockUsecase.NewMockReceiptSender(t))
		h.verifyPushAuth = true
		h.audience = "https://worker.example.com/push"
		h.validate = validate

		req, rec := pushRequest(t, msg)
		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		h := newTestHandler(mockUsecase.NewMockReceiptSender(t))
		h.verifyPushAuth = true
		h.audience = "https://worker.example.com/push"
		h.validate = validate

		req, rec := pushRequest(t, msg)
		req.Header.Set("Authorization", "Bearer forged")
		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		sender := mockUsecase.NewMockReceiptSender(t)
		sender.EXPECT().HandleReceiptEvent(mock.Anything, testEvent()).Return(nil)

		h := newTestHandler(sender)
		h.verifyPushAuth = true
		h.audience = "https://worker.example.com/push"
		h.validate = validate

		req, rec := pushRequest(t, msg)
		req.Header.Set("Authorization", "Bearer good")
		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(errors.New("timeout")))
	assert.True(t, isRetryable(domainerrors.ErrReceiptRenderFailed))
	assert.False(t, isRetryable(domainerrors.ErrBadRequest))
	assert.False(t, isRetryable(errors.Wrap(domainerrors.ErrValidationFailed, "send")))
}
