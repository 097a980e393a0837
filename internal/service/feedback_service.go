package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type FeedbackService struct {
	repo repository.FeedbackRepositoryI
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepositoryI) *FeedbackService {
	return &FeedbackService{
		repo: feedbackRepo,
	}
}

func (fs *FeedbackService) Submit(ctx context.Context, accountID uuid.UUID, req *FeedbackRequest) (*entity.Feedback, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	fb := &entity.Feedback{
		AccountID: accountID,
		Text:      req.Text,
		Rating:    req.Rating,
	}
	if err := fs.repo.Create(ctx, fb); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return fb, nil
}

func (fs *FeedbackService) List(ctx context.Context, opts PaginationOpts) ([]entity.Feedback, error) {
	result, err := fs.repo.List(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return result, nil
}
