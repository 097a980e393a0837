package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const (
	AutoRejectionReason   = "Automated verification failed. Please check the screenshot and try again."
	ManualRejectionReason = "Screenshot unclear or invalid."
)

type PaymentVerdict struct {
	Status          entity.PaymentStatus
	RejectionReason string
}

type PaymentVerifier interface {
	Verify(ctx context.Context, payment entity.Payment) (PaymentVerdict, error)
}

// SimulatedVerifier stands in for a payment gateway: it waits delay and
// approves with probability successRate.
type SimulatedVerifier struct {
	delay       time.Duration
	successRate float64
	roll        func() float64
}

func NewSimulatedVerifier(delay time.Duration, successRate float64) *SimulatedVerifier {
	return &SimulatedVerifier{
		delay:       delay,
		successRate: successRate,
		roll:        rand.Float64,
	}
}

func (sv *SimulatedVerifier) Verify(ctx context.Context, payment entity.Payment) (PaymentVerdict, error) {
	timer := time.NewTimer(sv.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return PaymentVerdict{}, ctx.Err()
	case <-timer.C:
	}
	if sv.roll() < sv.successRate {
		return PaymentVerdict{Status: entity.PaymentPaid}, nil
	}
	return PaymentVerdict{
		Status:          entity.PaymentRejected,
		RejectionReason: AutoRejectionReason,
	}, nil
}
