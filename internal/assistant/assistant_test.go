package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryalaha/EcoTrack-app-manage/internal/assistant"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type fakeProvider struct {
	answer  string
	err     error
	calls   int
	system  string
	prompts []string
}

func (fp *fakeProvider) Name() string {
	return "fake"
}

func (fp *fakeProvider) Complete(_ context.Context, system, prompt string) (string, error) {
	fp.calls++
	fp.system = system
	fp.prompts = append(fp.prompts, prompt)
	return fp.answer, fp.err
}

type errorCounter map[string]int

func (ec errorCounter) IncAssistantError(provider string) {
	ec[provider]++
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	t.Run("answers with persona", func(t *testing.T) {
		p := &fakeProvider{answer: "Rinse dry plastics before binning them."}
		a := assistant.New(p, errorCounter{})
		assert.Equal(t, p.answer, a.Chat(ctx, "  How do I recycle plastic? "))
		assert.Equal(t, assistant.EcoHelperPersona, p.system)
		assert.Equal(t, []string{"How do I recycle plastic?"}, p.prompts)
	})
	t.Run("disabled without provider", func(t *testing.T) {
		a := assistant.New(nil, nil)
		assert.False(t, a.Enabled())
		assert.Equal(t, assistant.UnavailableReply, a.Chat(ctx, "hi"))
	})
	t.Run("provider failure", func(t *testing.T) {
		errs := errorCounter{}
		a := assistant.New(&fakeProvider{err: errors.New("quota exceeded")}, errs)
		assert.Equal(t, assistant.ConnectionReply, a.Chat(ctx, "hi"))
		assert.Equal(t, 1, errs["fake"])
	})
}

func TestETA(t *testing.T) {
	ctx := context.Background()
	from := entity.Location{Lat: 22.5, Lng: 88.3}
	to := entity.Location{Lat: 22.6, Lng: 88.4}
	t.Run("parsed answer", func(t *testing.T) {
		p := &fakeProvider{answer: "18"}
		a := assistant.New(p, nil)
		assert.Equal(t, "18 min", a.ETA(ctx, from, to))
		require.Len(t, p.prompts, 1)
		assert.Contains(t, p.prompts[0], "from latitude 22.5, longitude 88.3 to latitude 22.6, longitude 88.4")
		assert.Empty(t, p.system)
	})
	t.Run("unparsable answer", func(t *testing.T) {
		a := assistant.New(&fakeProvider{answer: "soon"}, nil)
		assert.Equal(t, assistant.ETANotAvailable, a.ETA(ctx, from, to))
	})
	t.Run("disabled", func(t *testing.T) {
		assert.Equal(t, assistant.ETANotAvailable, assistant.New(nil, nil).ETA(ctx, from, to))
	})
}

func TestCircuitBreakerOpens(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{err: errors.New("unavailable")}
	errs := errorCounter{}
	a := assistant.New(p, errs)
	for range 8 {
		assert.Equal(t, assistant.ConnectionReply, a.Chat(ctx, "hi"))
	}
	// Open breaker short-circuits calls after the fifth failure
	assert.Equal(t, 5, p.calls)
	assert.Equal(t, 8, errs["fake"])
}
