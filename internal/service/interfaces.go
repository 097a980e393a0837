package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type SignupRequest struct {
	Name       string `validate:"required,min=2,max=100"`
	Identifier string `validate:"required,identifier"`
	Password   string `validate:"required,strong_password,max=72"`
	FamilySize int    `validate:"required,min=1,max=100"`
	Area       string `validate:"required,max=200"`
	Landmark   string `validate:"max=200"`
	Pincode    string `validate:"required,pincode"`
}

type ProvisionRequest struct {
	Name       string      `validate:"required,min=2,max=100"`
	Identifier string      `validate:"required,identifier"`
	Password   string      `validate:"required,min=8,max=72"`
	Role       entity.Role `validate:"required,oneof=admin employee driver"`
}

// Nil fields are left untouched.
type ProfileUpdate struct {
	Name             *string `validate:"omitempty,min=2,max=100"`
	Email            *string `validate:"omitempty,email"`
	BookingReminders *bool
}

type BookingRequest struct {
	PickupDate    time.Time
	TimeSlot      entity.TimeSlot         `validate:"required,oneof=Morning Afternoon"`
	WasteType     entity.BookingWasteType `validate:"required,oneof='Event Waste' 'Bulk Household' 'Garden Waste'"`
	Notes         string                  `validate:"max=500"`
	AttendeeCount *int                    `validate:"omitempty,min=1"`
}

type ComplaintRequest struct {
	Issue   string `validate:"required,max=200"`
	Details string `validate:"max=2000"`
	Photo   string
}

type FeedbackRequest struct {
	Text   string `validate:"required,max=2000"`
	Rating int    `validate:"min=1,max=5"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type AccountServiceI interface {
	// Validates household signup, bills the first month and creates the account
	Signup(ctx context.Context, req *SignupRequest) (*entity.Account, error)
	// Household portal login. Updates streak, login time and ip
	Login(ctx context.Context, identifier, password, ip string) (*entity.Account, error)
	// Field-staff portal login. Also classifies attendance unless the account is on leave
	StaffLogin(ctx context.Context, identifier, password string, role entity.Role, ip string) (*entity.Account, error)
	AdminLogin(ctx context.Context, identifier, password string) (*entity.Account, error)
	Provision(ctx context.Context, req *ProvisionRequest) (*entity.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	List(ctx context.Context, role entity.Role, opts PaginationOpts) ([]*entity.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Warn(ctx context.Context, id uuid.UUID, message string) error
	ClearWarning(ctx context.Context, id uuid.UUID) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SetAttendance(ctx context.Context, id uuid.UUID, status entity.AttendanceStatus) error
	UpdateProfile(ctx context.Context, id uuid.UUID, upd *ProfileUpdate) (*entity.Account, error)
}

type WasteLogServiceI interface {
	LogWaste(ctx context.Context, accountID uuid.UUID, wasteType entity.WasteType) (*engine.WasteLogResult, error)
	ListLogs(ctx context.Context, accountID uuid.UUID, opts PaginationOpts) ([]entity.WasteLog, error)
}

type BookingServiceI interface {
	Book(ctx context.Context, accountID uuid.UUID, req *BookingRequest) (*entity.Booking, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Booking, error)
	ListAll(ctx context.Context, opts PaginationOpts) ([]entity.Booking, error)
	Complete(ctx context.Context, id uuid.UUID) error
	AdjustFee(ctx context.Context, id uuid.UUID, fee decimal.Decimal) (*entity.Booking, error)
}

type PaymentServiceI interface {
	// Stores pending payment and starts its verification in background
	Submit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, screenshot string) (*entity.Payment, error)
	// Settles pending payment with verifier's verdict
	Verify(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	// Admin decision on pending payment. Empty reason on rejection gets the default one
	Review(ctx context.Context, id uuid.UUID, approve bool, reason string) (*entity.Payment, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Payment, error)
	ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]entity.Payment, error)
}

type MessageServiceI interface {
	Notify(ctx context.Context, recipientID uuid.UUID, text string) (*entity.Message, error)
	List(ctx context.Context, recipientID uuid.UUID) ([]entity.Message, error)
	MarkRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
	Broadcast(ctx context.Context) (string, error)
	SetBroadcast(ctx context.Context, message string) error
}

type SettingsServiceI interface {
	Plans(ctx context.Context) (*entity.SubscriptionPlans, error)
	UpdatePlans(ctx context.Context, plans *entity.SubscriptionPlans) error
}

type TrackingServiceI interface {
	UpdateLocation(ctx context.Context, staffID uuid.UUID, loc entity.Location) error
	ActiveDriver(ctx context.Context) (*entity.DriverLocation, error)
	// Returns human readable arrival estimate of the active driver, "Not available" on any failure
	ETA(ctx context.Context, household entity.Location) string
}

type ComplaintServiceI interface {
	File(ctx context.Context, accountID uuid.UUID, req *ComplaintRequest) (*entity.Complaint, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Complaint, error)
	ListAll(ctx context.Context, opts PaginationOpts) ([]entity.Complaint, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ComplaintStatus) error
}

type FeedbackServiceI interface {
	Submit(ctx context.Context, accountID uuid.UUID, req *FeedbackRequest) (*entity.Feedback, error)
	List(ctx context.Context, opts PaginationOpts) ([]entity.Feedback, error)
}

type ChatServiceI interface {
	Chat(ctx context.Context, prompt string) string
}

// Clock returns "now" in the portal's timezone.
type Clock func() time.Time

func LocalClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// EventRecorder counts domain events. *metrics.Metrics satisfies it.
type EventRecorder interface {
	IncLogin(portal string)
	IncWasteLog(wasteType string)
	IncFine()
	IncPayment(status string)
	IncBooking(wasteType string)
}
