package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type FeedbackRepository struct {
	conn PgConnection
}

func NewFeedbackRepoWithConn(conn PgConnection) *FeedbackRepository {
	mustPing(conn, "feedbackRepo")
	return &FeedbackRepository{
		conn: conn,
	}
}

func (fr *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	if feedback == nil {
		return errors.New("feedback is nil")
	}
	err := fr.conn.QueryRow(ctx,
		`INSERT INTO feedback (account_id, text, rating) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		feedback.AccountID, feedback.Text, feedback.Rating,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating feedback error: " + err.Error())
	}
	return nil
}

func (fr *FeedbackRepository) List(ctx context.Context, limit, offset int) ([]entity.Feedback, error) {
	rows, err := fr.conn.Query(ctx,
		`SELECT id, account_id, text, rating, created_at FROM feedback ORDER BY created_at DESC LIMIT $1 OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, errors.New("listing feedback error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Feedback, 0)
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(&f.ID, &f.AccountID, &f.Text, &f.Rating, &f.CreatedAt); err != nil {
			return nil, errors.New("feedback row parsing error: " + err.Error())
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected feedback rows error: " + err.Error())
	}
	return result, nil
}
