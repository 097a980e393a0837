package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	kolkata = time.FixedZone("IST", 5*3600+30*60)
	plans   = entity.SubscriptionPlans{
		Standard:             decimal.NewFromInt(63),
		LargeFamily:          decimal.NewFromInt(75),
		LargeFamilyThreshold: 5,
	}
)

type fixedClock struct {
	t time.Time
}

func (fc *fixedClock) now() time.Time {
	return fc.t
}

func (fc *fixedClock) advance(d time.Duration) {
	fc.t = fc.t.Add(d)
}

func newClock(y int, m time.Month, d, hh, mm, ss int) *fixedClock {
	return &fixedClock{t: time.Date(y, m, d, hh, mm, ss, 0, kolkata)}
}

// eventCounter is an in-memory EventRecorder.
type eventCounter struct {
	mu       sync.Mutex
	logins   map[string]int
	logs     map[string]int
	fines    int
	payments map[string]int
	bookings map[string]int
}

func newRecorder() *eventCounter {
	return &eventCounter{
		logins:   map[string]int{},
		logs:     map[string]int{},
		payments: map[string]int{},
		bookings: map[string]int{},
	}
}

func (ec *eventCounter) IncLogin(portal string) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.logins[portal]++
}

func (ec *eventCounter) IncWasteLog(wasteType string) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.logs[wasteType]++
}

func (ec *eventCounter) IncFine() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.fines++
}

func (ec *eventCounter) IncPayment(status string) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.payments[status]++
}

func (ec *eventCounter) IncBooking(wasteType string) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.bookings[wasteType]++
}

func (ec *eventCounter) paymentCount(status entity.PaymentStatus) int {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.payments[string(status)]
}
