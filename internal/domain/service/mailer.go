package service

import (
	"context"
)

// MailAttachment is a file attached to an outgoing email.
type MailAttachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// OutgoingMail is a single-recipient HTML email.
type OutgoingMail struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []MailAttachment
}

// Mailer delivers email through an external transport.
type Mailer interface {
	Send(ctx context.Context, msg *OutgoingMail) error
}
