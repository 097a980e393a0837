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

const accountColumns = `id, name, identifier, password_hash, role, status, warning_message, email, family_size, ` +
	`area, landmark, pincode, outstanding_balance, login_streak, last_streak_increment, ` +
	`consecutive_mixed_waste_logs, last_waste_log_date, attendance_status, last_login_time, ` +
	`last_ip_address, booking_reminders, created_at`

// Sign-in writes only its own columns so that concurrent admin changes of
// status, warning or leave survive it.
const recordLoginQuery = `UPDATE accounts SET login_streak = $1, last_streak_increment = $2, ` +
	`attendance_status = CASE WHEN attendance_status = 'on_leave' THEN attendance_status ELSE $3 END, ` +
	`last_login_time = $4, last_ip_address = $5 ` +
	`WHERE id = $6 AND status <> 'blocked' RETURNING status, warning_message, attendance_status;`

type AccountsRepository struct {
	conn PgConnection
}

func NewAccountsRepoWithConn(conn PgConnection) *AccountsRepository {
	mustPing(conn, "accountsRepo")
	return &AccountsRepository{
		conn: conn,
	}
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var acc entity.Account
	err := row.Scan(
		&acc.ID, &acc.Name, &acc.Identifier, &acc.PasswordHash, &acc.Role, &acc.Status,
		&acc.WarningMessage, &acc.Email, &acc.FamilySize,
		&acc.Address.Area, &acc.Address.Landmark, &acc.Address.Pincode,
		&acc.OutstandingBalance, &acc.LoginStreak, &acc.LastStreakIncrement,
		&acc.ConsecutiveMixedWasteLogs, &acc.LastWasteLogDate, &acc.AttendanceStatus,
		&acc.LastLoginTime, &acc.LastIPAddress, &acc.BookingReminders, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (ar *AccountsRepository) Create(ctx context.Context, acc *entity.Account) (uuid.UUID, error) {
	if acc == nil {
		return uuid.UUID{}, errors.New("account is nil")
	}
	var id uuid.UUID
	row := ar.conn.QueryRow(ctx,
		`INSERT INTO accounts (name, identifier, password_hash, role, status, email, family_size, area, landmark, pincode, `+
			`outstanding_balance, login_streak, last_streak_increment, attendance_status, booking_reminders) `+
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id;`,
		acc.Name, acc.Identifier, acc.PasswordHash, acc.Role, acc.Status, acc.Email, acc.FamilySize,
		acc.Address.Area, acc.Address.Landmark, acc.Address.Pincode,
		acc.OutstandingBalance, acc.LoginStreak, acc.LastStreakIncrement, acc.AttendanceStatus, acc.BookingReminders,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserExists
			}
		}
		return uuid.UUID{}, errors.New("creating account db error: " + err.Error())
	}
	return id, nil
}

func (ar *AccountsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	row := ar.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1;`, id)
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching account by id error: " + err.Error())
	}
	return acc, nil
}

func (ar *AccountsRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	row := ar.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE identifier = $1;`, identifier)
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching account by identifier error: " + err.Error())
	}
	return acc, nil
}

func (ar *AccountsRepository) List(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.Account, error) {
	rows, err := ar.conn.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE ($1 = '' OR role = $1) ORDER BY created_at LIMIT $2 OFFSET $3;`,
		string(role), limit, offset,
	)
	if err != nil {
		return nil, errors.New("listing accounts error: " + err.Error())
	}
	defer rows.Close()
	accounts := make([]*entity.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, errors.New("account row parsing error: " + err.Error())
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected account rows error: " + err.Error())
	}
	return accounts, nil
}

func (ar *AccountsRepository) RecordLogin(ctx context.Context, acc *entity.Account) error {
	row := ar.conn.QueryRow(ctx, recordLoginQuery,
		acc.LoginStreak, acc.LastStreakIncrement, acc.AttendanceStatus, acc.LastLoginTime, acc.LastIPAddress, acc.ID,
	)
	err := row.Scan(&acc.Status, &acc.WarningMessage, &acc.AttendanceStatus)
	if err != nil {
		// Blocked or removed after the credentials were checked
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrAccountBlocked
		}
		return errors.New("recording login error: " + err.Error())
	}
	return nil
}

func (ar *AccountsRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	return ar.exec(ctx, "setting status", `UPDATE accounts SET status = $1 WHERE id = $2;`, status, id)
}

func (ar *AccountsRepository) SetWarning(ctx context.Context, id uuid.UUID, message string) error {
	return ar.exec(ctx, "setting warning",
		`UPDATE accounts SET status = 'warned', warning_message = $1 WHERE id = $2;`, message, id)
}

func (ar *AccountsRepository) ClearWarning(ctx context.Context, id uuid.UUID) error {
	return ar.exec(ctx, "clearing warning",
		`UPDATE accounts SET status = CASE WHEN status = 'warned' THEN 'active' ELSE status END, `+
			`warning_message = '' WHERE id = $1;`, id)
}

func (ar *AccountsRepository) SetAttendance(ctx context.Context, id uuid.UUID, status entity.AttendanceStatus) error {
	return ar.exec(ctx, "setting attendance", `UPDATE accounts SET attendance_status = $1 WHERE id = $2;`, status, id)
}

func (ar *AccountsRepository) UpdateProfile(ctx context.Context, acc *entity.Account) error {
	return ar.exec(ctx, "updating profile",
		`UPDATE accounts SET name = $1, email = $2, booking_reminders = $3 WHERE id = $4;`,
		acc.Name, acc.Email, acc.BookingReminders, acc.ID)
}

// exec runs a single-row update and reports a missing row as ErrUserNotFound.
func (ar *AccountsRepository) exec(ctx context.Context, op, query string, args ...any) error {
	ct, err := ar.conn.Exec(ctx, query, args...)
	if err != nil {
		return errors.New(op + " error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ar *AccountsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting account error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
