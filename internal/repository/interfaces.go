package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type AccountsRepositoryI interface {
	// Creates new account. Returns generated id
	Create(ctx context.Context, acc *entity.Account) (uuid.UUID, error)
	// Looks up account by id. Used by auth middleware and every use case
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	// Looks up account by normalized email or mobile number. Used for login
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)
	// Lists accounts, optionally filtered by role (empty role lists all)
	List(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.Account, error)
	// Stores streak, attendance and last-login fields set by a sign-in. Blocked
	// accounts are left untouched (ErrAccountBlocked). Attendance marked on_leave
	// in the meantime is kept. Refreshes status, warning and attendance of acc
	RecordLogin(ctx context.Context, acc *entity.Account) error
	SetStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error
	// Moves account to warned status with message
	SetWarning(ctx context.Context, id uuid.UUID, message string) error
	// Drops warning message, warned accounts become active again
	ClearWarning(ctx context.Context, id uuid.UUID) error
	SetAttendance(ctx context.Context, id uuid.UUID, status entity.AttendanceStatus) error
	// Stores name, email and booking reminders
	UpdateProfile(ctx context.Context, acc *entity.Account) error
	// Deletes account with everything it owns
	Delete(ctx context.Context, id uuid.UUID) error
}

type WasteLogsRepositoryI interface {
	// Stores accepted log, the account's new mixed-log counter and log date, adds fine to
	// the balance and queues optional notice. Everything happens in one transaction
	Save(ctx context.Context, acc *entity.Account, log *entity.WasteLog, fine decimal.Decimal, notice *entity.Message) error
	// Lists logs of account, newest first
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]entity.WasteLog, error)
}

type MessagesRepositoryI interface {
	Create(ctx context.Context, msg *entity.Message) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]entity.Message, error)
	// Marks every unread message of recipient as read. Returns count of updated messages
	MarkRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type PaymentsRepositoryI interface {
	// Stores pending payment, fills ID and CreatedAt
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Payment, error)
	ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]entity.Payment, error)
	// Moves pending payment to its terminal status. Paid payments are
	// subtracted from the owner's balance in the same transaction
	Settle(ctx context.Context, payment *entity.Payment) error
}

type BookingsRepositoryI interface {
	// Stores booking, fills ID and CreatedAt. Positive fee is added to the owner's balance
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Booking, error)
	List(ctx context.Context, limit, offset int) ([]entity.Booking, error)
	Complete(ctx context.Context, id uuid.UUID) error
	// Prices booking flagged for adjustment and bills the owner
	AdjustFee(ctx context.Context, booking *entity.Booking) error
}

type SettingsRepositoryI interface {
	GetPlans(ctx context.Context) (*entity.SubscriptionPlans, error)
	UpdatePlans(ctx context.Context, plans *entity.SubscriptionPlans) error
	GetBroadcast(ctx context.Context) (string, error)
	SetBroadcast(ctx context.Context, message string) error
}

type LocationsRepositoryI interface {
	// Stores last known position of account
	Upsert(ctx context.Context, accountID uuid.UUID, loc entity.Location, at time.Time) error
	// Returns freshest location of any account with role reported after since
	LatestByRole(ctx context.Context, role entity.Role, since time.Time) (*entity.DriverLocation, error)
}

type ComplaintsRepositoryI interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Complaint, error)
	List(ctx context.Context, limit, offset int) ([]entity.Complaint, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ComplaintStatus) error
}

type FeedbackRepositoryI interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	List(ctx context.Context, limit, offset int) ([]entity.Feedback, error)
}
