package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleHousehold Role = "household"
	RoleAdmin     Role = "admin"
	RoleEmployee  Role = "employee"
	RoleDriver    Role = "driver"
)

// IsStaff reports whether the role signs in through the field-staff portal.
func (r Role) IsStaff() bool {
	return r == RoleEmployee || r == RoleDriver
}

type AccountStatus string

const (
	StatusActive  AccountStatus = "active"
	StatusBlocked AccountStatus = "blocked"
	StatusWarned  AccountStatus = "warned"
)

type AttendanceStatus string

const (
	AttendanceNone    AttendanceStatus = ""
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOnLeave AttendanceStatus = "on_leave"
)

type Address struct {
	Area     string `json:"area"`
	Landmark string `json:"landmark"`
	Pincode  string `json:"pincode"`
}

type Account struct {
	ID                        uuid.UUID        `json:"id"`
	Name                      string           `json:"name"`
	Identifier                string           `json:"identifier"`
	PasswordHash              string           `json:"-"`
	Role                      Role             `json:"role"`
	Status                    AccountStatus    `json:"status"`
	WarningMessage            string           `json:"warning_message,omitempty"`
	Email                     string           `json:"email,omitempty"`
	FamilySize                int              `json:"family_size"`
	Address                   Address          `json:"address"`
	OutstandingBalance        decimal.Decimal  `json:"outstanding_balance"`
	LoginStreak               int              `json:"login_streak"`
	LastStreakIncrement       *time.Time       `json:"last_streak_increment,omitempty"`
	ConsecutiveMixedWasteLogs int              `json:"consecutive_mixed_waste_logs"`
	LastWasteLogDate          *time.Time       `json:"last_waste_log_date,omitempty"`
	AttendanceStatus          AttendanceStatus `json:"attendance_status,omitempty"`
	LastLoginTime             *time.Time       `json:"last_login_time,omitempty"`
	LastIPAddress             string           `json:"last_ip_address,omitempty"`
	BookingReminders          bool             `json:"booking_reminders"`
	CreatedAt                 time.Time        `json:"created_at"`
}

type WasteType string

const (
	WasteWet   WasteType = "Wet"
	WasteDry   WasteType = "Dry"
	WasteMixed WasteType = "Mixed"
)

type WasteLog struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	WasteType WasteType `json:"waste_type"`
	LoggedAt  time.Time `json:"logged_at"`
	// Calendar day of LoggedAt in the portal's timezone.
	LogDay time.Time `json:"log_day"`
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending Verification"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRejected PaymentStatus = "Rejected"
)

type Payment struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          PaymentStatus   `json:"status"`
	Screenshot      string          `json:"screenshot,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
)

type BookingWasteType string

const (
	BookingEventWaste    BookingWasteType = "Event Waste"
	BookingBulkHousehold BookingWasteType = "Bulk Household"
	BookingGardenWaste   BookingWasteType = "Garden Waste"
)

type BookingStatus string

const (
	BookingScheduled BookingStatus = "Scheduled"
	BookingCompleted BookingStatus = "Completed"
)

type Booking struct {
	ID                 uuid.UUID        `json:"id"`
	AccountID          uuid.UUID        `json:"account_id"`
	PickupDate         time.Time        `json:"pickup_date"`
	TimeSlot           TimeSlot         `json:"time_slot"`
	WasteType          BookingWasteType `json:"waste_type"`
	Status             BookingStatus    `json:"status"`
	Notes              string           `json:"notes,omitempty"`
	AttendeeCount      *int             `json:"attendee_count,omitempty"`
	BookingFee         *decimal.Decimal `json:"booking_fee,omitempty"`
	NeedsFeeAdjustment bool             `json:"needs_fee_adjustment"`
	CreatedAt          time.Time        `json:"created_at"`
}

type Message struct {
	ID          uuid.UUID `json:"id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Text        string    `json:"text"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "Pending"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

type Complaint struct {
	ID        uuid.UUID       `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Issue     string          `json:"issue"`
	Details   string          `json:"details"`
	Photo     string          `json:"photo,omitempty"`
	Status    ComplaintStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Feedback struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriptionPlans struct {
	Standard             decimal.Decimal `json:"standard"`
	LargeFamily          decimal.Decimal `json:"large_family"`
	LargeFamilyThreshold int             `json:"large_family_threshold"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether l is a finite point on the globe. NaN fails every
// comparison and is rejected with it.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

type DriverLocation struct {
	AccountID  uuid.UUID `json:"driver_id"`
	Name       string    `json:"name"`
	Location   Location  `json:"location"`
	RecordedAt time.Time `json:"recorded_at"`
}
