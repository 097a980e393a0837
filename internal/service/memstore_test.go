package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

// In-memory repositories holding state across calls.

type memAccounts struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]entity.Account
	messages map[uuid.UUID][]entity.Message
	logs     map[uuid.UUID][]entity.WasteLog
}

func newMemAccounts() *memAccounts {
	return &memAccounts{
		accounts: map[uuid.UUID]entity.Account{},
		messages: map[uuid.UUID][]entity.Message{},
		logs:     map[uuid.UUID][]entity.WasteLog{},
	}
}

func (ma *memAccounts) Create(_ context.Context, acc *entity.Account) (uuid.UUID, error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	for _, existing := range ma.accounts {
		if existing.Identifier == acc.Identifier {
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
	}
	id := uuid.New()
	stored := *acc
	stored.ID = id
	ma.accounts[id] = stored
	return id, nil
}

func (ma *memAccounts) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	acc, ok := ma.accounts[id]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &acc, nil
}

func (ma *memAccounts) FindByIdentifier(_ context.Context, identifier string) (*entity.Account, error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	for _, acc := range ma.accounts {
		if acc.Identifier == identifier {
			return &acc, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (ma *memAccounts) List(_ context.Context, role entity.Role, limit, offset int) ([]*entity.Account, error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	var result []*entity.Account
	for _, acc := range ma.accounts {
		if role == "" || acc.Role == role {
			result = append(result, &acc)
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	return result[offset:min(offset+limit, len(result))], nil
}

// RecordLogin mirrors the SQL store: blocked rows are skipped and leave
// granted meanwhile is kept.
func (ma *memAccounts) RecordLogin(_ context.Context, acc *entity.Account) error {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	stored, ok := ma.accounts[acc.ID]
	if !ok || stored.Status == entity.StatusBlocked {
		return errorvalues.ErrAccountBlocked
	}
	stored.LoginStreak = acc.LoginStreak
	stored.LastStreakIncrement = acc.LastStreakIncrement
	if stored.AttendanceStatus != entity.AttendanceOnLeave {
		stored.AttendanceStatus = acc.AttendanceStatus
	}
	stored.LastLoginTime = acc.LastLoginTime
	stored.LastIPAddress = acc.LastIPAddress
	ma.accounts[acc.ID] = stored
	acc.Status = stored.Status
	acc.WarningMessage = stored.WarningMessage
	acc.AttendanceStatus = stored.AttendanceStatus
	return nil
}

func (ma *memAccounts) change(id uuid.UUID, f func(acc *entity.Account)) error {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	stored, ok := ma.accounts[id]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	f(&stored)
	ma.accounts[id] = stored
	return nil
}

func (ma *memAccounts) SetStatus(_ context.Context, id uuid.UUID, status entity.AccountStatus) error {
	return ma.change(id, func(acc *entity.Account) { acc.Status = status })
}

func (ma *memAccounts) SetWarning(_ context.Context, id uuid.UUID, message string) error {
	return ma.change(id, func(acc *entity.Account) {
		acc.Status = entity.StatusWarned
		acc.WarningMessage = message
	})
}

func (ma *memAccounts) ClearWarning(_ context.Context, id uuid.UUID) error {
	return ma.change(id, func(acc *entity.Account) {
		if acc.Status == entity.StatusWarned {
			acc.Status = entity.StatusActive
		}
		acc.WarningMessage = ""
	})
}

func (ma *memAccounts) SetAttendance(_ context.Context, id uuid.UUID, status entity.AttendanceStatus) error {
	return ma.change(id, func(acc *entity.Account) { acc.AttendanceStatus = status })
}

func (ma *memAccounts) UpdateProfile(_ context.Context, upd *entity.Account) error {
	return ma.change(upd.ID, func(acc *entity.Account) {
		acc.Name = upd.Name
		acc.Email = upd.Email
		acc.BookingReminders = upd.BookingReminders
	})
}

func (ma *memAccounts) Delete(_ context.Context, id uuid.UUID) error {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	if _, ok := ma.accounts[id]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(ma.accounts, id)
	return nil
}

// Save implements the waste log store on top of the same state.
func (ma *memAccounts) Save(_ context.Context, acc *entity.Account, log *entity.WasteLog, fine decimal.Decimal, notice *entity.Message) error {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	stored, ok := ma.accounts[acc.ID]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	for _, l := range ma.logs[acc.ID] {
		if l.LogDay.Equal(log.LogDay) {
			return errorvalues.ErrAlreadyLoggedToday
		}
	}
	log.ID = uuid.New()
	ma.logs[acc.ID] = append(ma.logs[acc.ID], *log)
	stored.ConsecutiveMixedWasteLogs = acc.ConsecutiveMixedWasteLogs
	stored.LastWasteLogDate = acc.LastWasteLogDate
	stored.OutstandingBalance = stored.OutstandingBalance.Add(fine)
	ma.accounts[acc.ID] = stored
	if notice != nil {
		notice.ID = uuid.New()
		notice.CreatedAt = log.LoggedAt
		ma.messages[acc.ID] = append(ma.messages[acc.ID], *notice)
	}
	return nil
}

func (ma *memAccounts) ListByAccount(_ context.Context, accountID uuid.UUID, limit, offset int) ([]entity.WasteLog, error) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	logs := ma.logs[accountID]
	if offset >= len(logs) {
		return nil, nil
	}
	return logs[offset:min(offset+limit, len(logs))], nil
}

type memSettings struct {
	plans     entity.SubscriptionPlans
	broadcast string
}

func (ms *memSettings) GetPlans(_ context.Context) (*entity.SubscriptionPlans, error) {
	p := ms.plans
	return &p, nil
}

func (ms *memSettings) UpdatePlans(_ context.Context, plans *entity.SubscriptionPlans) error {
	ms.plans = *plans
	return nil
}

func (ms *memSettings) GetBroadcast(_ context.Context) (string, error) {
	return ms.broadcast, nil
}

func (ms *memSettings) SetBroadcast(_ context.Context, message string) error {
	ms.broadcast = message
	return nil
}

type memComplaints struct {
	complaints []entity.Complaint
}

func (mc *memComplaints) Create(_ context.Context, c *entity.Complaint) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	mc.complaints = append(mc.complaints, *c)
	return nil
}

func (mc *memComplaints) GetByID(_ context.Context, id uuid.UUID) (*entity.Complaint, error) {
	for _, c := range mc.complaints {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errorvalues.ErrComplaintNotFound
}

func (mc *memComplaints) ListByAccount(_ context.Context, accountID uuid.UUID) ([]entity.Complaint, error) {
	var result []entity.Complaint
	for _, c := range mc.complaints {
		if c.AccountID == accountID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (mc *memComplaints) List(_ context.Context, limit, offset int) ([]entity.Complaint, error) {
	if offset >= len(mc.complaints) {
		return nil, nil
	}
	return mc.complaints[offset:min(offset+limit, len(mc.complaints))], nil
}

func (mc *memComplaints) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ComplaintStatus) error {
	for i := range mc.complaints {
		if mc.complaints[i].ID == id {
			mc.complaints[i].Status = status
			return nil
		}
	}
	return errorvalues.ErrComplaintNotFound
}

type memFeedback struct {
	feedback []entity.Feedback
}

func (mf *memFeedback) Create(_ context.Context, fb *entity.Feedback) error {
	fb.ID = uuid.New()
	mf.feedback = append(mf.feedback, *fb)
	return nil
}

func (mf *memFeedback) List(_ context.Context, limit, offset int) ([]entity.Feedback, error) {
	if offset >= len(mf.feedback) {
		return nil, nil
	}
	return mf.feedback[offset:min(offset+limit, len(mf.feedback))], nil
}
