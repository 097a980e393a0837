package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const complaintColumns = `id, account_id, issue, details, photo, status, created_at`

type ComplaintsRepository struct {
	conn PgConnection
}

func NewComplaintsRepoWithConn(conn PgConnection) *ComplaintsRepository {
	mustPing(conn, "complaintsRepo")
	return &ComplaintsRepository{
		conn: conn,
	}
}

func scanComplaint(row pgx.Row) (entity.Complaint, error) {
	var c entity.Complaint
	err := row.Scan(&c.ID, &c.AccountID, &c.Issue, &c.Details, &c.Photo, &c.Status, &c.CreatedAt)
	return c, err
}

func (cr *ComplaintsRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint == nil {
		return errors.New("complaint is nil")
	}
	err := cr.conn.QueryRow(ctx,
		`INSERT INTO complaints (account_id, issue, details, photo, status) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		complaint.AccountID, complaint.Issue, complaint.Details, complaint.Photo, complaint.Status,
	).Scan(&complaint.ID, &complaint.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating complaint error: " + err.Error())
	}
	return nil
}

func (cr *ComplaintsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	c, err := scanComplaint(cr.conn.QueryRow(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrComplaintNotFound
		}
		return nil, errors.New("searching complaint error: " + err.Error())
	}
	return &c, nil
}

func (cr *ComplaintsRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Complaint, error) {
	return cr.list(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE account_id = $1 ORDER BY created_at DESC;`, accountID)
}

func (cr *ComplaintsRepository) List(ctx context.Context, limit, offset int) ([]entity.Complaint, error) {
	return cr.list(ctx, `SELECT `+complaintColumns+` FROM complaints ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
}

func (cr *ComplaintsRepository) list(ctx context.Context, query string, args ...any) ([]entity.Complaint, error) {
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing complaints error: " + err.Error())
	}
	defer rows.Close()
	complaints := make([]entity.Complaint, 0)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, errors.New("complaint row parsing error: " + err.Error())
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected complaint rows error: " + err.Error())
	}
	return complaints, nil
}

func (cr *ComplaintsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ComplaintStatus) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE complaints SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return errors.New("updating complaint status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrComplaintNotFound
	}
	return nil
}
