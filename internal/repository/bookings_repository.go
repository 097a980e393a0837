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

const bookingColumns = `id, account_id, pickup_date, time_slot, waste_type, status, notes, attendee_count, ` +
	`booking_fee, needs_fee_adjustment, created_at`

type BookingsRepository struct {
	conn PgConnection
}

func NewBookingsRepoWithConn(conn PgConnection) *BookingsRepository {
	mustPing(conn, "bookingsRepo")
	return &BookingsRepository{
		conn: conn,
	}
}

func scanBooking(row pgx.Row) (entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(&b.ID, &b.AccountID, &b.PickupDate, &b.TimeSlot, &b.WasteType, &b.Status, &b.Notes,
		&b.AttendeeCount, &b.BookingFee, &b.NeedsFeeAdjustment, &b.CreatedAt)
	return b, err
}

func (br *BookingsRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking == nil {
		return errors.New("booking is nil")
	}
	tx, err := br.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning booking tx error: " + err.Error())
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO bookings (account_id, pickup_date, time_slot, waste_type, status, notes, attendee_count, `+
			`booking_fee, needs_fee_adjustment) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;`,
		booking.AccountID, booking.PickupDate, booking.TimeSlot, booking.WasteType, booking.Status, booking.Notes,
		booking.AttendeeCount, booking.BookingFee, booking.NeedsFeeAdjustment,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		rollback(ctx, tx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating booking error: " + err.Error())
	}
	if booking.BookingFee != nil && booking.BookingFee.IsPositive() {
		if err := chargeAccount(ctx, tx, booking.AccountID, *booking.BookingFee); err != nil {
			rollback(ctx, tx)
			return errors.New("charging booking fee error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing booking error: " + err.Error())
	}
	return nil
}

func (br *BookingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, err := scanBooking(br.conn.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBookingNotFound
		}
		return nil, errors.New("searching booking error: " + err.Error())
	}
	return &b, nil
}

func (br *BookingsRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Booking, error) {
	return br.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE account_id = $1 ORDER BY pickup_date DESC;`, accountID)
}

func (br *BookingsRepository) List(ctx context.Context, limit, offset int) ([]entity.Booking, error) {
	return br.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY pickup_date DESC LIMIT $1 OFFSET $2;`, limit, offset)
}

func (br *BookingsRepository) list(ctx context.Context, query string, args ...any) ([]entity.Booking, error) {
	rows, err := br.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing bookings error: " + err.Error())
	}
	defer rows.Close()
	bookings := make([]entity.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, errors.New("booking row parsing error: " + err.Error())
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected booking rows error: " + err.Error())
	}
	return bookings, nil
}

func (br *BookingsRepository) Complete(ctx context.Context, id uuid.UUID) error {
	ct, err := br.conn.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2 AND status <> $1;`,
		entity.BookingCompleted, id,
	)
	if err != nil {
		return errors.New("completing booking error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBookingCompleted
	}
	return nil
}

func (br *BookingsRepository) AdjustFee(ctx context.Context, booking *entity.Booking) error {
	if booking == nil || booking.BookingFee == nil {
		return errors.New("booking or fee is nil")
	}
	tx, err := br.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning fee adjustment tx error: " + err.Error())
	}
	err = tx.QueryRow(ctx,
		`UPDATE bookings SET booking_fee = $1, needs_fee_adjustment = FALSE WHERE id = $2 AND needs_fee_adjustment `+
			`RETURNING account_id;`,
		*booking.BookingFee, booking.ID,
	).Scan(&booking.AccountID)
	if err != nil {
		rollback(ctx, tx)
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrFeeNotAdjustable
		}
		return errors.New("adjusting booking fee error: " + err.Error())
	}
	if err := chargeAccount(ctx, tx, booking.AccountID, *booking.BookingFee); err != nil {
		rollback(ctx, tx)
		return errors.New("charging adjusted fee error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing fee adjustment error: " + err.Error())
	}
	booking.NeedsFeeAdjustment = false
	return nil
}
