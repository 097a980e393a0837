package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type LocationsRepository struct {
	conn PgConnection
}

func NewLocationsRepoWithConn(conn PgConnection) *LocationsRepository {
	mustPing(conn, "locationsRepo")
	return &LocationsRepository{
		conn: conn,
	}
}

func (lr *LocationsRepository) Upsert(ctx context.Context, accountID uuid.UUID, loc entity.Location, at time.Time) error {
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO driver_locations (account_id, lat, lng, recorded_at) VALUES ($1, $2, $3, $4) `+
			`ON CONFLICT (account_id) DO UPDATE SET lat = EXCLUDED.lat, lng = EXCLUDED.lng, recorded_at = EXCLUDED.recorded_at;`,
		accountID, loc.Lat, loc.Lng, at,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("storing location error: " + err.Error())
	}
	return nil
}

func (lr *LocationsRepository) LatestByRole(ctx context.Context, role entity.Role, since time.Time) (*entity.DriverLocation, error) {
	var dl entity.DriverLocation
	err := lr.conn.QueryRow(ctx,
		`SELECT l.account_id, a.name, l.lat, l.lng, l.recorded_at FROM driver_locations l `+
			`JOIN accounts a ON a.id = l.account_id WHERE a.role = $1 AND l.recorded_at >= $2 `+
			`ORDER BY l.recorded_at DESC LIMIT 1;`,
		role, since,
	).Scan(&dl.AccountID, &dl.Name, &dl.Location.Lat, &dl.Location.Lng, &dl.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoActiveDriver
		}
		return nil, errors.New("searching driver location error: " + err.Error())
	}
	return &dl, nil
}
