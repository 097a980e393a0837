package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const verificationTimeout = time.Minute

type PaymentService struct {
	repo     repository.PaymentsRepositoryI
	verifier PaymentVerifier
	events   EventRecorder
	inFlight sync.WaitGroup
}

func NewPaymentService(paymentsRepo repository.PaymentsRepositoryI, verifier PaymentVerifier, events EventRecorder) *PaymentService {
	return &PaymentService{
		repo:     paymentsRepo,
		verifier: verifier,
		events:   events,
	}
}

func (ps *PaymentService) Submit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, screenshot string) (*entity.Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", errorvalues.ErrValidation)
	}
	payment := &entity.Payment{
		AccountID:  accountID,
		Amount:     amount,
		Status:     entity.PaymentPending,
		Screenshot: screenshot,
	}
	if err := ps.repo.Create(ctx, payment); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	ps.events.IncPayment(string(entity.PaymentPending))

	ps.inFlight.Add(1)
	go func(id uuid.UUID) {
		defer ps.inFlight.Done()
		vctx, cancel := context.WithTimeout(context.Background(), verificationTimeout)
		defer cancel()
		settled, err := ps.Verify(vctx, id)
		if err != nil {
			slog.Default().Error("payment verification failed",
				slog.String("payment_id", id.String()),
				slog.String("error", err.Error()))
			return
		}
		slog.Default().Info("payment verified",
			slog.String("payment_id", id.String()),
			slog.String("status", string(settled.Status)))
	}(payment.ID)

	return payment, nil
}

func (ps *PaymentService) Verify(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := ps.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	verdict, err := ps.verifier.Verify(ctx, *payment)
	if err != nil {
		return nil, fmt.Errorf("verifier error: %w", err)
	}
	payment.Status = verdict.Status
	payment.RejectionReason = verdict.RejectionReason
	if err := ps.settle(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (ps *PaymentService) Review(ctx context.Context, id uuid.UUID, approve bool, reason string) (*entity.Payment, error) {
	payment, err := ps.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	if approve {
		payment.Status = entity.PaymentPaid
	} else {
		payment.Status = entity.PaymentRejected
		payment.RejectionReason = reason
		if reason == "" {
			payment.RejectionReason = ManualRejectionReason
		}
	}
	if err := ps.settle(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (ps *PaymentService) pending(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := ps.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPaymentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if payment.Status != entity.PaymentPending {
		return nil, errorvalues.ErrPaymentSettled
	}
	return payment, nil
}

func (ps *PaymentService) settle(ctx context.Context, payment *entity.Payment) error {
	if err := ps.repo.Settle(ctx, payment); err != nil {
		if errors.Is(err, errorvalues.ErrPaymentSettled) {
			return err
		}
		return fmt.Errorf("repository settling error: %w", err)
	}
	ps.events.IncPayment(string(payment.Status))
	return nil
}

func (ps *PaymentService) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Payment, error) {
	payments, err := ps.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return payments, nil
}

func (ps *PaymentService) ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]entity.Payment, error) {
	payments, err := ps.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return payments, nil
}

// Wait blocks until background verifications finish.
func (ps *PaymentService) Wait() {
	ps.inFlight.Wait()
}
