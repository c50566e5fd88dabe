package impl

import (
	"fmt"

	"portal/internal/domain/entity"
)

const (
	titleMaintenanceReceipt = "Maintenance Receipt"
	titleInvoiceCreated     = "Invoice Created"
	titlePaymentReceipt     = "Payment Receipt"
	titleDeliveryLogged     = "Delivery Logged"
	titleDeliveryReceipt    = "Delivery Receipt"
)

func maintenanceAttachmentName(id uint) string {
	return fmt.Sprintf("maintenance_%d.pdf", id)
}

func paymentAttachmentName(id uint) string {
	return fmt.Sprintf("payment_%d.pdf", id)
}

func deliveryAttachmentName(id uint) string {
	return fmt.Sprintf("delivery_%d.pdf", id)
}

// maintenanceCreatedEvent is mailed when a request is filed.
func maintenanceCreatedEvent(owner *entity.User, m *entity.MaintenanceRequest) entity.ReceiptEvent {
	return entity.ReceiptEvent{
		To:    notifyTarget(owner),
		Title: titleMaintenanceReceipt,
		Fields: []entity.ReceiptField{
			entity.Field("Receipt", "Maintenance"),
			entity.Field("ID", m.ID),
			entity.Field("Tenant", notifyTarget(owner)),
			entity.Field("Note", m.Note),
			entity.Field("Status", m.Status),
			entity.Field("Created", m.CreatedAt),
		},
		AttachmentName: maintenanceAttachmentName(m.ID),
	}
}

// maintenanceReceiptFields backs the downloadable receipt.
func maintenanceReceiptFields(tenant string, m *entity.MaintenanceRequest) []entity.ReceiptField {
	return []entity.ReceiptField{
		entity.Field("ID", m.ID),
		entity.Field("Tenant", tenant),
		entity.Field("Note", m.Note),
		entity.Field("Status", m.Status),
		entity.Field("Created", m.CreatedAt),
	}
}

func paymentCreatedEvent(owner *entity.User, p *entity.Payment) entity.ReceiptEvent {
	return entity.ReceiptEvent{
		To:    notifyTarget(owner),
		Title: titleInvoiceCreated,
		Fields: []entity.ReceiptField{
			entity.Field("Receipt", "Payment"),
			entity.Field("ID", p.ID),
			entity.Field("Tenant", notifyTarget(owner)),
			entity.Field("Description", p.Description),
			entity.Field("Amount", p.Amount),
			entity.DateField("Due", p.DueDate),
			entity.Field("Status", p.Status),
		},
		AttachmentName: paymentAttachmentName(p.ID),
	}
}

func paymentPaidEvent(owner *entity.User, p *entity.Payment) entity.ReceiptEvent {
	return entity.ReceiptEvent{
		To:    notifyTarget(owner),
		Title: titlePaymentReceipt,
		Fields: []entity.ReceiptField{
			entity.Field("Receipt", "Payment"),
			entity.Field("ID", p.ID),
			entity.Field("Tenant", notifyTarget(owner)),
			entity.Field("Description", p.Description),
			entity.Field("Amount", p.Amount),
			entity.Field("Status", p.Status),
			entity.Field("Paid at", p.PaidAt),
		},
		AttachmentName: paymentAttachmentName(p.ID),
	}
}

func paymentReceiptFields(tenant string, p *entity.Payment) []entity.ReceiptField {
	return []entity.ReceiptField{
		entity.Field("ID", p.ID),
		entity.Field("Tenant", tenant),
		entity.Field("Description", p.Description),
		entity.Field("Amount", p.Amount),
		entity.DateField("Due", p.DueDate),
		entity.Field("Status", p.Status),
		entity.Field("Paid at", p.PaidAt),
	}
}

func deliveryLoggedEvent(owner *entity.User, d *entity.Delivery) entity.ReceiptEvent {
	return entity.ReceiptEvent{
		To:    notifyTarget(owner),
		Title: titleDeliveryLogged,
		Fields: []entity.ReceiptField{
			entity.Field("Receipt", "Delivery"),
			entity.Field("ID", d.ID),
			entity.Field("Tenant", notifyTarget(owner)),
			entity.Field("Courier", d.Courier),
			entity.Field("Tracking", d.TrackingCode),
			entity.Field("COD?", d.IsCOD),
			entity.Field("COD Amount", d.CODAmount),
		},
		AttachmentName: deliveryAttachmentName(d.ID),
	}
}

func deliveryReceiptFields(tenant string, d *entity.Delivery) []entity.ReceiptField {
	return []entity.ReceiptField{
		entity.Field("ID", d.ID),
		entity.Field("Tenant", tenant),
		entity.Field("Courier", d.Courier),
		entity.Field("Tracking", d.TrackingCode),
		entity.Field("COD?", d.IsCOD),
		entity.Field("COD Amount", d.CODAmount),
		entity.Field("COD Paid", d.CODPaid),
		entity.Field("Status", d.Status),
		entity.Field("Received at", d.ReceivedAt),
	}
}
