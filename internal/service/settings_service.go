package service

import (
	"context"
	"fmt"

	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type SettingsService struct {
	repo repository.SettingsRepositoryI
}

func NewSettingsService(settingsRepo repository.SettingsRepositoryI) *SettingsService {
	return &SettingsService{
		repo: settingsRepo,
	}
}

func (ss *SettingsService) Plans(ctx context.Context) (*entity.SubscriptionPlans, error) {
	plans, err := ss.repo.GetPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return plans, nil
}

func (ss *SettingsService) UpdatePlans(ctx context.Context, plans *entity.SubscriptionPlans) error {
	if !plans.Standard.IsPositive() || !plans.LargeFamily.IsPositive() {
		return fmt.Errorf("%w: fees must be positive", errorvalues.ErrValidation)
	}
	if plans.LargeFamilyThreshold < 1 {
		return fmt.Errorf("%w: large family threshold must be at least 1", errorvalues.ErrValidation)
	}
	if err := ss.repo.UpdatePlans(ctx, plans); err != nil {
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}
