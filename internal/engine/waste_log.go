package engine

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

const (
	// MixedLogsBeforeFine is the run length of Mixed logs that triggers a fine.
	MixedLogsBeforeFine = 3
	// MixedWasteNotice is queued for the account when the fine is applied.
	MixedWasteNotice = `A fine of ₹100 has been applied to your account for logging "Mixed Waste" on three consecutive days. Please ensure proper waste segregation to avoid future fines.`
)

// MixedWasteFine is added to the outstanding balance on every completed run.
var MixedWasteFine = decimal.NewFromInt(100)

type WasteLogResult struct {
	Accepted         bool
	ConsecutiveMixed int
	FineApplied      bool
	Balance          decimal.Decimal
	// Account is the updated record, equal to the input when not accepted.
	Account entity.Account
	// Log is the record to persist; zero when not accepted.
	Log entity.WasteLog
	// Notice is the text to deliver to the account, empty without a fine.
	Notice string
}

// ApplyWasteLog accepts at most one log per calendar day and accrues the
// mixed-waste fine.
func ApplyWasteLog(acc entity.Account, wasteType entity.WasteType, now time.Time) WasteLogResult {
	loc := now.Location()
	if acc.LastWasteLogDate != nil && SameDay(*acc.LastWasteLogDate, now, loc) {
		return WasteLogResult{
			Accepted:         false,
			ConsecutiveMixed: acc.ConsecutiveMixedWasteLogs,
			Balance:          acc.OutstandingBalance,
			Account:          acc,
		}
	}
	res := WasteLogResult{
		Accepted: true,
		Balance:  acc.OutstandingBalance,
	}
	if wasteType == entity.WasteMixed {
		count := acc.ConsecutiveMixedWasteLogs + 1
		if count >= MixedLogsBeforeFine {
			res.FineApplied = true
			res.Balance = acc.OutstandingBalance.Add(MixedWasteFine)
			res.Notice = MixedWasteNotice
			count = 0
		}
		res.ConsecutiveMixed = count
	}

	loggedAt := now
	acc.ConsecutiveMixedWasteLogs = res.ConsecutiveMixed
	acc.OutstandingBalance = res.Balance
	acc.LastWasteLogDate = &loggedAt
	res.Account = acc
	res.Log = entity.WasteLog{
		AccountID: acc.ID,
		WasteType: wasteType,
		LoggedAt:  loggedAt,
		LogDay:    StartOfDay(now, loc),
	}
	return res
}
