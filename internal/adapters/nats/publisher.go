package nats

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	nats "github.com/nats-io/nats.go"
)

// Publisher emits domain events for downstream consumers (the checker worker,
// notification services). Publishing is fire-and-forget; a nil Publisher is a
// valid no-op so the API runs without a broker.
type Publisher struct {
	conn               *nats.Conn
	documentSubject    string
	checkResultSubject string
}

func NewPublisher(conn *nats.Conn, documentSubject, checkResultSubject string) *Publisher {
	return &Publisher{conn: conn, documentSubject: documentSubject, checkResultSubject: checkResultSubject}
}

type event struct {
	EventID    string `json:"event_id"`
	OccurredAt string `json:"occurred_at"`
	Payload    any    `json:"payload"`
}

type DocumentRegistered struct {
	DocumentID  int64  `json:"document_id"`
	UserID      int64  `json:"user_id"`
	GoogleDocID string `json:"google_doc_id"`
}

type CheckResultCreated struct {
	CheckResultID int64 `json:"check_result_id"`
	DocumentID    int64 `json:"document_id"`
	TemplateID    int64 `json:"template_id"`
	Passed        bool  `json:"passed"`
}

func (p *Publisher) PublishDocumentRegistered(ev DocumentRegistered) error {
	if p == nil {
		return nil
	}
	return p.publish(p.documentSubject, ev)
}

func (p *Publisher) PublishCheckResultCreated(ev CheckResultCreated) error {
	if p == nil {
		return nil
	}
	return p.publish(p.checkResultSubject, ev)
}

func (p *Publisher) publish(subject string, payload any) error {
	if p == nil || p.conn == nil {
		return nil
	}
	data, err := json.Marshal(event{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	})
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, data)
}
