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

const paymentColumns = `id, account_id, amount, status, screenshot, rejection_reason, created_at`

type PaymentsRepository struct {
	conn PgConnection
}

func NewPaymentsRepoWithConn(conn PgConnection) *PaymentsRepository {
	mustPing(conn, "paymentsRepo")
	return &PaymentsRepository{
		conn: conn,
	}
}

func scanPayment(row pgx.Row) (entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(&p.ID, &p.AccountID, &p.Amount, &p.Status, &p.Screenshot, &p.RejectionReason, &p.CreatedAt)
	return p, err
}

func (pr *PaymentsRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment == nil {
		return errors.New("payment is nil")
	}
	err := pr.conn.QueryRow(ctx,
		`INSERT INTO payments (account_id, amount, status, screenshot) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		payment.AccountID, payment.Amount, payment.Status, payment.Screenshot,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating payment error: " + err.Error())
	}
	return nil
}

func (pr *PaymentsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	p, err := scanPayment(pr.conn.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPaymentNotFound
		}
		return nil, errors.New("searching payment error: " + err.Error())
	}
	return &p, nil
}

func (pr *PaymentsRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Payment, error) {
	return pr.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE account_id = $1 ORDER BY created_at DESC;`, accountID)
}

func (pr *PaymentsRepository) ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]entity.Payment, error) {
	return pr.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE status = $1 ORDER BY created_at;`, status)
}

func (pr *PaymentsRepository) list(ctx context.Context, query string, arg any) ([]entity.Payment, error) {
	rows, err := pr.conn.Query(ctx, query, arg)
	if err != nil {
		return nil, errors.New("listing payments error: " + err.Error())
	}
	defer rows.Close()
	payments := make([]entity.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, errors.New("payment row parsing error: " + err.Error())
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected payment rows error: " + err.Error())
	}
	return payments, nil
}

func (pr *PaymentsRepository) Settle(ctx context.Context, payment *entity.Payment) error {
	if payment == nil {
		return errors.New("payment is nil")
	}
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning settle tx error: " + err.Error())
	}
	ct, err := tx.Exec(ctx,
		`UPDATE payments SET status = $1, rejection_reason = $2 WHERE id = $3 AND status = $4;`,
		payment.Status, payment.RejectionReason, payment.ID, entity.PaymentPending,
	)
	if err != nil {
		rollback(ctx, tx)
		return errors.New("settling payment error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		rollback(ctx, tx)
		return errorvalues.ErrPaymentSettled
	}
	if payment.Status == entity.PaymentPaid {
		if err := chargeAccount(ctx, tx, payment.AccountID, payment.Amount.Neg()); err != nil {
			rollback(ctx, tx)
			return errors.New("crediting account error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing settle error: " + err.Error())
	}
	return nil
}
