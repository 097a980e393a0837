package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

// Portal-wide settings live in the single row with id 1 seeded by migrations.
type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepoWithConn(conn PgConnection) *SettingsRepository {
	mustPing(conn, "settingsRepo")
	return &SettingsRepository{
		conn: conn,
	}
}

func (sr *SettingsRepository) GetPlans(ctx context.Context) (*entity.SubscriptionPlans, error) {
	var plans entity.SubscriptionPlans
	err := sr.conn.QueryRow(ctx,
		`SELECT standard_fee, large_family_fee, large_family_threshold FROM portal_settings WHERE id = 1;`,
	).Scan(&plans.Standard, &plans.LargeFamily, &plans.LargeFamilyThreshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSettingsNotFound
		}
		return nil, errors.New("getting plans error: " + err.Error())
	}
	return &plans, nil
}

func (sr *SettingsRepository) UpdatePlans(ctx context.Context, plans *entity.SubscriptionPlans) error {
	if plans == nil {
		return errors.New("plans are nil")
	}
	ct, err := sr.conn.Exec(ctx,
		`UPDATE portal_settings SET standard_fee = $1, large_family_fee = $2, large_family_threshold = $3 WHERE id = 1;`,
		plans.Standard, plans.LargeFamily, plans.LargeFamilyThreshold,
	)
	if err != nil {
		return errors.New("updating plans error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSettingsNotFound
	}
	return nil
}

func (sr *SettingsRepository) GetBroadcast(ctx context.Context) (string, error) {
	var msg string
	err := sr.conn.QueryRow(ctx, `SELECT broadcast_message FROM portal_settings WHERE id = 1;`).Scan(&msg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errorvalues.ErrSettingsNotFound
		}
		return "", errors.New("getting broadcast error: " + err.Error())
	}
	return msg, nil
}

func (sr *SettingsRepository) SetBroadcast(ctx context.Context, message string) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE portal_settings SET broadcast_message = $1 WHERE id = 1;`, message)
	if err != nil {
		return errors.New("setting broadcast error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSettingsNotFound
	}
	return nil
}
