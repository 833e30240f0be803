package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Postgres{
		connections: sqlx.NewDb(db, "sqlmock"),
		logger:      logging.Default(),
	}, mock
}

func TestInsertMessage(t *testing.T) {
	p, mock := mockPostgres(t)

	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := p.InsertMessage(context.Background(), Message{
		UserPhone: "whatsapp:+33600000000",
		Role:      RoleUser,
		Content:   "What did PSG do yesterday?",
		MsgSID:    NullString("SMIN1"),
		Direction: NullString(DirectionIn),
		Source:    NullString(SourceWebhook),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertMessage_DBError(t *testing.T) {
	p, mock := mockPostgres(t)

	mock.ExpectExec("INSERT INTO messages").
		WillReturnError(assert.AnError)

	_, err := p.InsertMessage(context.Background(), Message{
		UserPhone: "whatsapp:+33600000000",
		Role:      RoleUser,
		Content:   "hello",
	})
	assert.Error(t, err)
}

func TestGetHistory_ReversesToOldestFirst(t *testing.T) {
	p, mock := mockPostgres(t)

	// the query returns newest first; callers want conversation order
	rows := sqlmock.NewRows([]string{"role", "content"}).
		AddRow(RoleAssistant, "PSG won 3–1 against Lyon.").
		AddRow(RoleUser, "What did PSG do yesterday?")
	mock.ExpectQuery("SELECT role, content FROM messages").
		WithArgs("whatsapp:+33600000000", 20).
		WillReturnRows(rows)

	history, err := p.GetHistory(context.Background(), "whatsapp:+33600000000", 20)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, RoleAssistant, history[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHistory_Empty(t *testing.T) {
	p, mock := mockPostgres(t)

	mock.ExpectQuery("SELECT role, content FROM messages").
		WithArgs("whatsapp:+33600000000", 20).
		WillReturnRows(sqlmock.NewRows([]string{"role", "content"}))

	history, err := p.GetHistory(context.Background(), "whatsapp:+33600000000", 20)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestNullString(t *testing.T) {
	assert.False(t, NullString("").Valid)
	ns := NullString("x")
	assert.True(t, ns.Valid)
	assert.Equal(t, "x", ns.String)
}
