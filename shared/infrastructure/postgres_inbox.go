package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// InboxEntry records a consumed message and the reply produced for it.
type InboxEntry struct {
	MessageID     string
	Topic         string
	CorrelationID string
	Reply         json.RawMessage
	ProcessedAt   time.Time
}

// PostgresInbox deduplicates consumed messages. It operates inside the
// caller's transaction so the business effect and the inbox row commit together.
type PostgresInbox struct {
	table string
}

func NewPostgresInbox() *PostgresInbox {
	return &PostgresInbox{table: "inbox_messages"}
}

type postgresInboxEntry struct {
	MessageID     string    `db:"message_id"`
	Topic         string    `db:"topic"`
	CorrelationID string    `db:"correlation_id"`
	Reply         []byte    `db:"reply"`
	ProcessedAt   time.Time `db:"processed_at"`
}

// Lookup returns the entry for messageID, or nil when the message is new.
// The row is locked until the transaction ends.
func (i *PostgresInbox) Lookup(ctx context.Context, tx *sqlx.Tx, messageID string) (*InboxEntry, error) {
	query := `
		SELECT message_id, topic, correlation_id, reply, processed_at
		FROM ` + i.table + `
		WHERE message_id = $1
		FOR UPDATE`

	var row postgresInboxEntry
	err := tx.GetContext(ctx, &row, query, messageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to look up inbox message")
	}

	return &InboxEntry{
		MessageID:     row.MessageID,
		Topic:         row.Topic,
		CorrelationID: row.CorrelationID,
		Reply:         row.Reply,
		ProcessedAt:   row.ProcessedAt,
	}, nil
}

// Record stores entry. A concurrent consumer that recorded the same message
// first makes this fail on the primary key, rolling back the caller's work.
func (i *PostgresInbox) Record(ctx context.Context, tx *sqlx.Tx, entry InboxEntry) error {
	if entry.ProcessedAt.IsZero() {
		entry.ProcessedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO ` + i.table + ` (message_id, topic, correlation_id, reply, processed_at)
		VALUES (:message_id, :topic, :correlation_id, :reply, :processed_at)`

	_, err := tx.NamedExecContext(ctx, query, &postgresInboxEntry{
		MessageID:     entry.MessageID,
		Topic:         entry.Topic,
		CorrelationID: entry.CorrelationID,
		Reply:         entry.Reply,
		ProcessedAt:   entry.ProcessedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to record inbox message")
	}

	return nil
}
