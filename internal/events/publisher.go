package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const (
	SubjectCatalogReplaced = "catalog.replaced"
	SubjectContactCreated  = "catalog.contact.created"
)

// CatalogReplacedEvent is published after a successful catalog replacement.
type CatalogReplacedEvent struct {
	ImportedCount int       `json:"importedCount"`
	SkippedRows   int       `json:"skippedRows"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// ContactCreatedEvent is published after an enquiry is stored.
type ContactCreatedEvent struct {
	ContactID   string    `json:"contactId"`
	EnquiryType string    `json:"enquiryType"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Publisher sends catalog lifecycle events to NATS. It is optional: when no
// NATS_URL is configured the service runs without one, and publish failures
// are logged but never fail the request that triggered them.
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

func NewPublisher(natsURL string, logger *logrus.Logger) (*Publisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name("catalog-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		logger: logger.WithField("component", "catalog-events"),
	}, nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

func (p *Publisher) publish(subject string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("Failed to marshal event")
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("Failed to publish event")
	}
}

// PublishCatalogReplaced reports a completed catalog replacement.
func (p *Publisher) PublishCatalogReplaced(importedCount, skippedRows int) {
	if p == nil {
		return
	}
	p.publish(SubjectCatalogReplaced, CatalogReplacedEvent{
		ImportedCount: importedCount,
		SkippedRows:   skippedRows,
		OccurredAt:    time.Now().UTC(),
	})
}

// PublishContactCreated reports a stored enquiry.
func (p *Publisher) PublishContactCreated(contactID, enquiryType string) {
	if p == nil {
		return
	}
	p.publish(SubjectContactCreated, ContactCreatedEvent{
		ContactID:   contactID,
		EnquiryType: enquiryType,
		OccurredAt:  time.Now().UTC(),
	})
}
