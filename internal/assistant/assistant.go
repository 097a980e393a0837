package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const (
	UnavailableReply = "Sorry, the AI chatbot is currently unavailable. Please check the API key configuration."
	ConnectionReply  = "Sorry, I'm having trouble connecting to my brain right now. Please try again later."
	ETANotAvailable  = "Not available"
)

const EcoHelperPersona = `You are EcoHelper, a friendly and knowledgeable AI assistant for the EcoTrack Solid Waste Management app. Your purpose is to help users with their questions about waste management.

You should be able to:
- Provide clear and concise information on waste segregation (wet, dry, hazardous).
- Give tips on composting and recycling.
- Explain the benefits of proper waste management.
- Answer questions about using the EcoTrack app features.
- Encourage users in their efforts to be environmentally friendly.

Rules:
- Keep your answers brief and easy to understand.
- Use a positive and encouraging tone.
- If a user asks a question outside the scope of waste management or the app, politely state that you can only assist with topics related to waste management.
- Do not provide personal opinions, financial advice, or medical advice.
`

type ErrorRecorder interface {
	IncAssistantError(provider string)
}

// Assistant answers household questions and estimates driver arrival times.
// Provider failures never reach the caller: chat falls back to a fixed apology
// and ETA to "Not available".
type Assistant struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
	errors   ErrorRecorder
	logger   *slog.Logger
}

// New builds an assistant over provider. A nil provider gives a disabled
// assistant.
func New(provider Provider, errs ErrorRecorder) *Assistant {
	a := &Assistant{
		provider: provider,
		errors:   errs,
		logger:   slog.Default().With(slog.String("component", "assistant")),
	}
	if provider != nil {
		a.cb = NewCircuitBreaker(provider.Name())
		a.logger = a.logger.With(slog.String("provider", provider.Name()))
	}
	return a
}

// NewCircuitBreaker opens after at least 5 calls in a 30s window when 60% of
// them failed, and probes again after 10s.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
}

func (a *Assistant) Enabled() bool {
	return a.provider != nil
}

func (a *Assistant) Chat(ctx context.Context, prompt string) string {
	if !a.Enabled() {
		return UnavailableReply
	}
	answer, err := a.complete(ctx, EcoHelperPersona, strings.TrimSpace(prompt))
	if err != nil {
		a.logger.Error("chat completion failed", slog.String("error", err.Error()))
		return ConnectionReply
	}
	return answer
}

func (a *Assistant) ETA(ctx context.Context, from, to entity.Location) string {
	if !a.Enabled() {
		return ETANotAvailable
	}
	prompt := fmt.Sprintf(
		"What is the estimated driving time from latitude %v, longitude %v to latitude %v, longitude %v? Respond with only the number of minutes, for example: '15'.",
		from.Lat, from.Lng, to.Lat, to.Lng,
	)
	answer, err := a.complete(ctx, "", prompt)
	if err != nil {
		a.logger.Error("eta completion failed", slog.String("error", err.Error()))
		return ETANotAvailable
	}
	eta := ParseETA(answer)
	if eta == ETANotAvailable {
		a.logger.Warn("could not parse eta", slog.String("answer", answer))
	}
	return eta
}

func (a *Assistant) complete(ctx context.Context, system, prompt string) (string, error) {
	result, err := a.cb.Execute(func() (any, error) {
		return a.provider.Complete(ctx, system, prompt)
	})
	if err != nil {
		if a.errors != nil {
			a.errors.IncAssistantError(a.provider.Name())
		}
		return "", err
	}
	return result.(string), nil
}
