package engine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func household(balance int64) entity.Account {
	return entity.Account{
		ID:                 uuid.New(),
		Role:               entity.RoleHousehold,
		Status:             entity.StatusActive,
		FamilySize:         4,
		OutstandingBalance: decimal.NewFromInt(balance),
	}
}

func logDays(t *testing.T, acc entity.Account, start time.Time, types ...entity.WasteType) (entity.Account, []engine.WasteLogResult) {
	t.Helper()
	results := make([]engine.WasteLogResult, 0, len(types))
	for i, wt := range types {
		res := engine.ApplyWasteLog(acc, wt, start.AddDate(0, 0, i))
		require.True(t, res.Accepted, "log %d rejected", i)
		acc = res.Account
		results = append(results, res)
	}
	return acc, results
}

func TestApplyWasteLogFineOnThirdMixed(t *testing.T) {
	start := time.Date(2024, 7, 1, 19, 0, 0, 0, kolkata)
	acc, results := logDays(t, household(75), start, entity.WasteMixed, entity.WasteMixed, entity.WasteMixed)

	assert.False(t, results[0].FineApplied)
	assert.Equal(t, 1, results[0].ConsecutiveMixed)
	assert.False(t, results[1].FineApplied)
	assert.Equal(t, 2, results[1].ConsecutiveMixed)

	third := results[2]
	assert.True(t, third.FineApplied)
	assert.Equal(t, 0, third.ConsecutiveMixed)
	assert.True(t, decimal.NewFromInt(175).Equal(third.Balance))
	assert.Equal(t, engine.MixedWasteNotice, third.Notice)
	assert.True(t, decimal.NewFromInt(175).Equal(acc.OutstandingBalance))
	assert.Equal(t, 0, acc.ConsecutiveMixedWasteLogs)
}

func TestApplyWasteLogRunBrokenByOtherType(t *testing.T) {
	start := time.Date(2024, 7, 1, 9, 0, 0, 0, kolkata)
	acc, results := logDays(t, household(0), start,
		entity.WasteMixed, entity.WasteWet, entity.WasteMixed, entity.WasteMixed)

	assert.Equal(t, 0, results[1].ConsecutiveMixed)
	for _, res := range results {
		assert.False(t, res.FineApplied)
		assert.Empty(t, res.Notice)
	}
	assert.Equal(t, 2, acc.ConsecutiveMixedWasteLogs)
	assert.True(t, decimal.Zero.Equal(acc.OutstandingBalance))
}

func TestApplyWasteLogOncePerDay(t *testing.T) {
	morning := time.Date(2024, 7, 1, 7, 0, 0, 0, kolkata)
	acc := household(63)
	acc.ConsecutiveMixedWasteLogs = 2

	first := engine.ApplyWasteLog(acc, entity.WasteDry, morning)
	require.True(t, first.Accepted)
	assert.Equal(t, 0, first.ConsecutiveMixed)

	second := engine.ApplyWasteLog(first.Account, entity.WasteMixed, morning.Add(12*time.Hour))
	assert.False(t, second.Accepted)
	assert.False(t, second.FineApplied)
	assert.Equal(t, first.Account, second.Account)
	assert.Equal(t, 0, second.ConsecutiveMixed)
	assert.True(t, decimal.NewFromInt(63).Equal(second.Balance))
	assert.Equal(t, entity.WasteLog{}, second.Log)
}

func TestApplyWasteLogRecord(t *testing.T) {
	now := time.Date(2024, 7, 3, 22, 45, 0, 0, kolkata)
	acc := household(10)
	res := engine.ApplyWasteLog(acc, entity.WasteWet, now)
	require.True(t, res.Accepted)
	assert.Equal(t, acc.ID, res.Log.AccountID)
	assert.Equal(t, entity.WasteWet, res.Log.WasteType)
	assert.True(t, now.Equal(res.Log.LoggedAt))
	assert.True(t, time.Date(2024, 7, 3, 0, 0, 0, 0, kolkata).Equal(res.Log.LogDay))
	require.NotNil(t, res.Account.LastWasteLogDate)
	assert.True(t, now.Equal(*res.Account.LastWasteLogDate))
}
