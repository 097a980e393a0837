package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const (
	// A driver counts as on duty while its last report is younger than this
	ActiveDriverWindow = 15 * time.Minute
	ETANotAvailable    = "Not available"
)

type ETAEstimator interface {
	ETA(ctx context.Context, from, to entity.Location) string
}

type TrackingService struct {
	repo      repository.LocationsRepositoryI
	estimator ETAEstimator
	now       Clock
}

func NewTrackingService(locationsRepo repository.LocationsRepositoryI, estimator ETAEstimator, clock Clock) *TrackingService {
	return &TrackingService{
		repo:      locationsRepo,
		estimator: estimator,
		now:       clock,
	}
}

func (ts *TrackingService) UpdateLocation(ctx context.Context, staffID uuid.UUID, loc entity.Location) error {
	if !loc.Valid() {
		return fmt.Errorf("%w: coordinates out of range", errorvalues.ErrValidation)
	}
	if err := ts.repo.Upsert(ctx, staffID, loc, ts.now()); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository storing error: %w", err)
	}
	return nil
}

func (ts *TrackingService) ActiveDriver(ctx context.Context) (*entity.DriverLocation, error) {
	dl, err := ts.repo.LatestByRole(ctx, entity.RoleDriver, ts.now().Add(-ActiveDriverWindow))
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoActiveDriver) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return dl, nil
}

func (ts *TrackingService) ETA(ctx context.Context, household entity.Location) string {
	if !household.Valid() {
		return ETANotAvailable
	}
	driver, err := ts.ActiveDriver(ctx)
	if err != nil {
		return ETANotAvailable
	}
	return ts.estimator.ETA(ctx, driver.Location, household)
}
