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

type ComplaintService struct {
	repo repository.ComplaintsRepositoryI
}

func NewComplaintService(complaintsRepo repository.ComplaintsRepositoryI) *ComplaintService {
	return &ComplaintService{
		repo: complaintsRepo,
	}
}

func (cs *ComplaintService) File(ctx context.Context, accountID uuid.UUID, req *ComplaintRequest) (*entity.Complaint, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	complaint := &entity.Complaint{
		AccountID: accountID,
		Issue:     req.Issue,
		Details:   req.Details,
		Photo:     req.Photo,
		Status:    entity.ComplaintPending,
	}
	if err := cs.repo.Create(ctx, complaint); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return complaint, nil
}

func (cs *ComplaintService) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Complaint, error) {
	complaints, err := cs.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return complaints, nil
}

func (cs *ComplaintService) ListAll(ctx context.Context, opts PaginationOpts) ([]entity.Complaint, error) {
	complaints, err := cs.repo.List(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return complaints, nil
}

func (cs *ComplaintService) SetStatus(ctx context.Context, id uuid.UUID, status entity.ComplaintStatus) error {
	switch status {
	case entity.ComplaintPending, entity.ComplaintInProgress, entity.ComplaintResolved:
	default:
		return fmt.Errorf("%w: unknown complaint status %q", errorvalues.ErrValidation, status)
	}
	if err := cs.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, errorvalues.ErrComplaintNotFound) {
			return err
		}
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}
