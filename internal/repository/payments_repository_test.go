package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

func TestCreatePayment(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPaymentsRepoWithConn(conn)
	p := entity.Payment{
		AccountID:  uuid.New(),
		Amount:     decimal.NewFromInt(63),
		Status:     entity.PaymentPending,
		Screenshot: "upi.png",
	}
	query := regexp.QuoteMeta(`INSERT INTO payments (account_id, amount, status, screenshot) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`)
	t.Run("created", func(t *testing.T) {
		id, now := uuid.New(), time.Now()
		conn.ExpectQuery(query).
			WithArgs(p.AccountID, p.Amount, p.Status, p.Screenshot).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, now))
		payment := p
		assert.NoError(t, repo.Create(ctx, &payment))
		assert.Equal(t, id, payment.ID)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(p.AccountID, p.Amount, p.Status, p.Screenshot).
			WillReturnError(errors.New("db error"))
		payment := p
		assert.Error(t, repo.Create(ctx, &payment))
	})
}

func TestGetPayment(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPaymentsRepoWithConn(conn)
	p := entity.Payment{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Amount:    decimal.NewFromInt(75),
		Status:    entity.PaymentPending,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	query := regexp.QuoteMeta(`FROM payments WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(p.ID).WillReturnRows(
			pgxmock.NewRows([]string{"id", "account_id", "amount", "status", "screenshot", "rejection_reason", "created_at"}).
				AddRow(p.ID, p.AccountID, p.Amount, p.Status, p.Screenshot, p.RejectionReason, p.CreatedAt),
		)
		result, err := repo.GetByID(ctx, p.ID)
		assert.NoError(t, err)
		assert.Equal(t, p, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(p.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, errorvalues.ErrPaymentNotFound)
	})
}

func TestSettlePayment(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPaymentsRepoWithConn(conn)
	settle := regexp.QuoteMeta(`UPDATE payments SET status = $1, rejection_reason = $2 WHERE id = $3 AND status = $4;`)
	credit := regexp.QuoteMeta(`UPDATE accounts SET outstanding_balance = outstanding_balance + $1 WHERE id = $2;`)
	t.Run("paid reduces balance", func(t *testing.T) {
		p := entity.Payment{ID: uuid.New(), AccountID: uuid.New(), Amount: decimal.NewFromInt(63), Status: entity.PaymentPaid}
		conn.ExpectBegin()
		conn.ExpectExec(settle).
			WithArgs(p.Status, "", p.ID, entity.PaymentPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(credit).
			WithArgs(decimal.NewFromInt(-63), p.AccountID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.Settle(ctx, &p))
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("rejected keeps balance", func(t *testing.T) {
		p := entity.Payment{ID: uuid.New(), AccountID: uuid.New(), Amount: decimal.NewFromInt(63),
			Status: entity.PaymentRejected, RejectionReason: "bad screenshot"}
		conn.ExpectBegin()
		conn.ExpectExec(settle).
			WithArgs(p.Status, p.RejectionReason, p.ID, entity.PaymentPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.Settle(ctx, &p))
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("already settled", func(t *testing.T) {
		p := entity.Payment{ID: uuid.New(), AccountID: uuid.New(), Amount: decimal.NewFromInt(63), Status: entity.PaymentPaid}
		conn.ExpectBegin()
		conn.ExpectExec(settle).
			WithArgs(p.Status, "", p.ID, entity.PaymentPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectRollback()
		assert.ErrorIs(t, repo.Settle(ctx, &p), errorvalues.ErrPaymentSettled)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
}

func TestListPaymentsByStatus(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPaymentsRepoWithConn(conn)
	query := regexp.QuoteMeta(`FROM payments WHERE status = $1 ORDER BY created_at;`)
	conn.ExpectQuery(query).WithArgs(entity.PaymentPending).WillReturnRows(
		pgxmock.NewRows([]string{"id", "account_id", "amount", "status", "screenshot", "rejection_reason", "created_at"}).
			AddRow(uuid.New(), uuid.New(), decimal.NewFromInt(63), entity.PaymentPending, "", "", time.Now()),
	)
	result, err := repo.ListByStatus(ctx, entity.PaymentPending)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
