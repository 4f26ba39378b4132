package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

const createTranscriptsTable = `CREATE TABLE IF NOT EXISTS chat_transcripts (
	id CHAR(36) NOT NULL PRIMARY KEY,
	created_at DATETIME(3) NOT NULL,
	mode VARCHAR(32) NOT NULL,
	route VARCHAR(32) NOT NULL,
	message TEXT NOT NULL,
	reply TEXT NOT NULL,
	order_name VARCHAR(64) NOT NULL DEFAULT ''
)`

const insertTranscript = `INSERT INTO chat_transcripts (id, created_at, mode, route, message, reply, order_name) VALUES (?, ?, ?, ?, ?, ?, ?)`

// TranscriptStore appends chat exchanges. It never reads them back.
type TranscriptStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewTranscriptStore(db *sql.DB) *TranscriptStore {
	return &TranscriptStore{db: db, now: time.Now}
}

func (s *TranscriptStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTranscriptsTable); err != nil {
		return fmt.Errorf("mysql: create chat_transcripts %w", err)
	}
	return nil
}

func (s *TranscriptStore) Record(ctx context.Context, t model.Transcript) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now().UTC()
	}
	_, err := s.db.ExecContext(ctx, insertTranscript,
		t.ID, t.CreatedAt, t.Mode, t.Route, t.Message, t.Reply, t.OrderName)
	if err != nil {
		return fmt.Errorf("mysql: insert transcript %w", err)
	}
	return nil
}
