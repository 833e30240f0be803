package database

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Roles stored in the messages table.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Directions stored in the messages table.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Sources stored in the messages table.
const (
	SourceWebhook     = "webhook"
	SourceCronWeather = "cron_weather"
	SourceCronResults = "cron_results"
	SourceCronContent = "cron_content"
)

// Message is a single turn of the WhatsApp conversation.
type Message struct {
	UUID        uuid.UUID      `db:"uuid"`
	UserPhone   string         `db:"user_phone"`
	Role        string         `db:"role"`
	Content     string         `db:"content"`
	MsgSID      sql.NullString `db:"msg_sid"`
	Direction   sql.NullString `db:"direction"`
	Source      sql.NullString `db:"source"`
	ContentHash string         `db:"content_hash"`
	Time        time.Time      `db:"created_at"`
}

// MessageWriter appends a conversation turn to the store.
type MessageWriter interface {
	InsertMessage(ctx context.Context, msg Message) (uuid.UUID, error)
}

// HistoryReader fetches the last N turns for a user, ordered oldest to newest.
type HistoryReader interface {
	GetHistory(ctx context.Context, userPhone string, limit int) ([]Message, error)
}

// MessageStore combines reading and writing conversation turns.
type MessageStore interface {
	MessageWriter
	HistoryReader
}

// NullString wraps a string into a sql.NullString, treating "" as NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// InsertMessage inserts a message into the database and returns the message
// ID if successful. Duplicate webhook deliveries and re-run cron pushes hit
// the unique indexes and are silently dropped.
func (p *Postgres) InsertMessage(ctx context.Context, msg Message) (uuid.UUID, error) {
	p.logger.Debug("generating UUID for message", "user", msg.UserPhone)
	ID, err := uuid.NewUUID()
	if err != nil {
		p.logger.Error("error generating UUID", "error", err.Error())
		return uuid.UUID{}, fmt.Errorf("error generating UUID: %w", err)
	}
	msg.UUID = ID

	if msg.Time.IsZero() {
		msg.Time = time.Now().UTC()
	}
	sum := md5.Sum([]byte(msg.Content))
	msg.ContentHash = hex.EncodeToString(sum[:])

	query := `INSERT INTO messages (uuid, user_phone, role, content, msg_sid, direction, source, content_hash, created_at)
		VALUES (:uuid, :user_phone, :role, :content, :msg_sid, :direction, :source, :content_hash, :created_at)
		ON CONFLICT DO NOTHING`
	p.logger.Debug("inserting message into database", "messageID", ID, "user", msg.UserPhone)

	_, err = p.connections.NamedExecContext(ctx, query, msg)
	if err != nil {
		p.logger.Error("error inserting message into database", "error", err.Error(), "messageID", ID)
		return uuid.UUID{}, fmt.Errorf("error inserting message: %w", err)
	}

	p.logger.Debug("message inserted successfully", "messageID", ID)
	return ID, nil
}

// GetHistory returns the last limit messages for a user, oldest first, so
// they can be fed to the chat completion in conversation order.
func (p *Postgres) GetHistory(ctx context.Context, userPhone string, limit int) ([]Message, error) {
	query := `SELECT role, content FROM messages WHERE user_phone = $1 ORDER BY created_at DESC LIMIT $2`

	var messages []Message
	err := p.connections.SelectContext(ctx, &messages, query, userPhone, limit)
	if err != nil {
		p.logger.Error("error fetching history", "error", err.Error(), "user", userPhone)
		return nil, fmt.Errorf("error fetching history: %w", err)
	}

	// reverse so the oldest message comes first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
