package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type WasteLogsRepository struct {
	conn PgConnection
}

func NewWasteLogsRepoWithConn(conn PgConnection) *WasteLogsRepository {
	mustPing(conn, "wasteLogsRepo")
	return &WasteLogsRepository{
		conn: conn,
	}
}

func (wr *WasteLogsRepository) Save(ctx context.Context, acc *entity.Account, log *entity.WasteLog, fine decimal.Decimal, notice *entity.Message) error {
	if acc == nil || log == nil {
		return errors.New("account or log is nil")
	}
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning waste log tx error: " + err.Error())
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO waste_logs (account_id, waste_type, logged_at, log_day) VALUES ($1, $2, $3, $4) RETURNING id;`,
		log.AccountID, log.WasteType, log.LoggedAt, log.LogDay,
	).Scan(&log.ID)
	if err != nil {
		rollback(ctx, tx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyLoggedToday
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("inserting waste log error: " + err.Error())
	}
	ct, err := tx.Exec(ctx,
		`UPDATE accounts SET consecutive_mixed_waste_logs = $1, last_waste_log_date = $2, `+
			`outstanding_balance = outstanding_balance + $3 WHERE id = $4;`,
		acc.ConsecutiveMixedWasteLogs, acc.LastWasteLogDate, fine, acc.ID,
	)
	if err != nil {
		rollback(ctx, tx)
		return errors.New("updating account after waste log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		rollback(ctx, tx)
		return errorvalues.ErrUserNotFound
	}
	if notice != nil {
		err = tx.QueryRow(ctx,
			`INSERT INTO messages (recipient_id, text) VALUES ($1, $2) RETURNING id, created_at;`,
			notice.RecipientID, notice.Text,
		).Scan(&notice.ID, &notice.CreatedAt)
		if err != nil {
			rollback(ctx, tx)
			return errors.New("queueing fine notice error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing waste log error: " + err.Error())
	}
	return nil
}

func (wr *WasteLogsRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]entity.WasteLog, error) {
	rows, err := wr.conn.Query(ctx,
		`SELECT id, account_id, waste_type, logged_at, log_day FROM waste_logs WHERE account_id = $1 `+
			`ORDER BY logged_at DESC LIMIT $2 OFFSET $3;`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, errors.New("listing waste logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.WasteLog, 0)
	for rows.Next() {
		var l entity.WasteLog
		if err := rows.Scan(&l.ID, &l.AccountID, &l.WasteType, &l.LoggedAt, &l.LogDay); err != nil {
			return nil, errors.New("waste log row parsing error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected waste log rows error: " + err.Error())
	}
	return logs, nil
}
