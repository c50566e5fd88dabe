package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"portal/internal/domain/entity"
)

const (
	// AttrRequestID carries the originating request id for tracing
	AttrRequestID = "request_id"
	// AttrAttachment carries the receipt attachment name
	AttrAttachment = "attachment"
)

// PushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps a receipt event the way Pub/Sub push delivers it
func NewPushMessage(event *entity.ReceiptEvent, messageID, requestID, subscription string, publishTime time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = publishTime.UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event, requestID)

	return msg, nil
}

// Event decodes the receipt event carried in the message data
func (m *PushMessage) Event() (*entity.ReceiptEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.ReceiptEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse receipt event")
	}

	return &event, nil
}

func eventAttributes(event *entity.ReceiptEvent, requestID string) map[string]string {
	attributes := map[string]string{
		AttrAttachment: event.AttachmentName,
	}
	if requestID != "" {
		attributes[AttrRequestID] = requestID
	}

	return attributes
}
