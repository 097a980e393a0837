package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type MessagesRepository struct {
	conn PgConnection
}

func NewMessagesRepoWithConn(conn PgConnection) *MessagesRepository {
	mustPing(conn, "messagesRepo")
	return &MessagesRepository{
		conn: conn,
	}
}

func (mr *MessagesRepository) Create(ctx context.Context, msg *entity.Message) error {
	if msg == nil {
		return errors.New("message is nil")
	}
	err := mr.conn.QueryRow(ctx,
		`INSERT INTO messages (recipient_id, text) VALUES ($1, $2) RETURNING id, created_at;`,
		msg.RecipientID, msg.Text,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating message error: " + err.Error())
	}
	return nil
}

func (mr *MessagesRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]entity.Message, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT id, recipient_id, text, read, created_at FROM messages WHERE recipient_id = $1 ORDER BY created_at DESC;`,
		recipientID,
	)
	if err != nil {
		return nil, errors.New("listing messages error: " + err.Error())
	}
	defer rows.Close()
	messages := make([]entity.Message, 0)
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.RecipientID, &m.Text, &m.Read, &m.CreatedAt); err != nil {
			return nil, errors.New("message row parsing error: " + err.Error())
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected message rows error: " + err.Error())
	}
	return messages, nil
}

func (mr *MessagesRepository) MarkRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	ct, err := mr.conn.Exec(ctx, `UPDATE messages SET read = TRUE WHERE recipient_id = $1 AND NOT read;`, recipientID)
	if err != nil {
		return 0, errors.New("marking messages read error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
