package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type WasteLogService struct {
	accounts repository.AccountsRepositoryI
	logs     repository.WasteLogsRepositoryI
	now      Clock
	events   EventRecorder
}

func NewWasteLogService(accountsRepo repository.AccountsRepositoryI, logsRepo repository.WasteLogsRepositoryI, clock Clock, events EventRecorder) *WasteLogService {
	return &WasteLogService{
		accounts: accountsRepo,
		logs:     logsRepo,
		now:      clock,
		events:   events,
	}
}

// LogWaste records today's waste type for a household. A second log on the
// same day is reported with Accepted=false and changes nothing.
func (ws *WasteLogService) LogWaste(ctx context.Context, accountID uuid.UUID, wasteType entity.WasteType) (*engine.WasteLogResult, error) {
	switch wasteType {
	case entity.WasteWet, entity.WasteDry, entity.WasteMixed:
	default:
		return nil, fmt.Errorf("%w: unknown waste type %q", errorvalues.ErrValidation, wasteType)
	}
	acc, err := ws.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if acc.Role != entity.RoleHousehold {
		return nil, errorvalues.ErrWrongRole
	}
	res := engine.ApplyWasteLog(*acc, wasteType, ws.now())
	if !res.Accepted {
		return &res, nil
	}
	fine := decimal.Zero
	var notice *entity.Message
	if res.FineApplied {
		fine = engine.MixedWasteFine
		notice = &entity.Message{
			RecipientID: acc.ID,
			Text:        res.Notice,
		}
	}
	err = ws.logs.Save(ctx, &res.Account, &res.Log, fine, notice)
	if err != nil {
		// Lost a race with a concurrent log of the same day
		if errors.Is(err, errorvalues.ErrAlreadyLoggedToday) {
			return &engine.WasteLogResult{
				Accepted:         false,
				ConsecutiveMixed: acc.ConsecutiveMixedWasteLogs,
				Balance:          acc.OutstandingBalance,
				Account:          *acc,
			}, nil
		}
		return nil, fmt.Errorf("storing waste log error: %w", err)
	}
	ws.events.IncWasteLog(string(wasteType))
	if res.FineApplied {
		ws.events.IncFine()
	}
	return &res, nil
}

func (ws *WasteLogService) ListLogs(ctx context.Context, accountID uuid.UUID, opts PaginationOpts) ([]entity.WasteLog, error) {
	logs, err := ws.logs.ListByAccount(ctx, accountID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return logs, nil
}
