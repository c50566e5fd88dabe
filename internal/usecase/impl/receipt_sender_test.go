package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	mockSvc "portal/internal/mocks/service"
	"portal/internal/usecase"
)

func createTestReceiptSender(t *testing.T) (usecase.ReceiptSender, *mockSvc.MockReceiptRenderer, *mockSvc.MockMailer) {
	renderer := mockSvc.NewMockReceiptRenderer(t)
	mailer := mockSvc.NewMockMailer(t)

	srv := NewReceiptSender(ReceiptSenderParams{
		Renderer: renderer,
		Mailer:   mailer,
		Logger:   newDiscardLogger(),
	})

	return srv, renderer, mailer
}

func TestReceiptSender_SendReceiptEmail(t *testing.T) {
	srv, renderer, mailer := createTestReceiptSender(t)
	ctx := context.Background()
	fields := []entity.ReceiptField{
		{Label: "ID", Value: "1"},
		{Label: "Note", Value: "<b>leaky</b> faucet"},
	}

	renderer.EXPECT().Render("Maintenance Receipt", fields).Return([]byte("%PDF-1.3"), nil)
	mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.OutgoingMail")).RunAndReturn(func(_ context.Context, msg *service.OutgoingMail) error {
		assert.Equal(t, "a@x.com", msg.To)
		assert.Equal(t, "Maintenance Receipt", msg.Subject)
		assert.Equal(t, "<p>Maintenance Receipt</p><pre>ID: 1\nNote: &lt;b&gt;leaky&lt;/b&gt; faucet</pre>", msg.HTMLBody)
		require.Len(t, msg.Attachments, 1)
		assert.Equal(t, "maintenance_1.pdf", msg.Attachments[0].Name)
		assert.Equal(t, "application/pdf", msg.Attachments[0].ContentType)
		assert.Equal(t, []byte("%PDF-1.3"), msg.Attachments[0].Data)

		return nil
	})

	require.NoError(t, srv.SendReceiptEmail(ctx, "a@x.com", "Maintenance Receipt", fields, "maintenance_1.pdf"))
}

func TestReceiptSender_TransportErrorIsReturned(t *testing.T) {
	srv, renderer, mailer := createTestReceiptSender(t)
	ctx := context.Background()

	renderer.EXPECT().Render("Payment Receipt", mock.Anything).Return([]byte("%PDF"), nil)
	mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("535 authentication failed"))

	err := srv.SendReceiptEmail(ctx, "a@x.com", "Payment Receipt", nil, "payment_1.pdf")

	assert.ErrorContains(t, err, "535 authentication failed")
}

func TestReceiptSender_EmptyRecipient(t *testing.T) {
	srv, _, _ := createTestReceiptSender(t)

	err := srv.SendReceiptEmail(context.Background(), " ", "Payment Receipt", nil, "payment_1.pdf")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReceiptSender_HandleReceiptEvent(t *testing.T) {
	srv, renderer, mailer := createTestReceiptSender(t)
	ctx := context.Background()
	event := &entity.ReceiptEvent{
		To:             "a@x.com",
		Title:          "Delivery Logged",
		Fields:         []entity.ReceiptField{{Label: "Courier", Value: "DHL"}},
		AttachmentName: "delivery_2.pdf",
	}

	renderer.EXPECT().Render("Delivery Logged", event.Fields).Return([]byte("%PDF"), nil)
	mailer.EXPECT().Send(ctx, mock.MatchedBy(func(msg *service.OutgoingMail) bool {
		return msg.Attachments[0].Name == "delivery_2.pdf"
	})).Return(nil)

	require.NoError(t, srv.HandleReceiptEvent(ctx, event))
	assert.ErrorIs(t, srv.HandleReceiptEvent(ctx, nil), domainerrors.ErrBadRequest)
}
