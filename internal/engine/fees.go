package engine

import (
	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

// SelectMonthlyFee bills families strictly larger than the threshold at the
// large-family rate.
func SelectMonthlyFee(familySize int, plans entity.SubscriptionPlans) decimal.Decimal {
	if familySize > plans.LargeFamilyThreshold {
		return plans.LargeFamily
	}
	return plans.Standard
}

type EventFee struct {
	Amount decimal.Decimal
	// AdminAdjust is set when the event is too large for the fee table and
	// an administrator has to price it.
	AdminAdjust bool
}

// Fee bands for event-waste pickups, by inclusive attendee upper bound.
var eventFeeBands = []struct {
	maxAttendees int
	fee          decimal.Decimal
}{
	{300, decimal.NewFromInt(500)},
	{600, decimal.NewFromInt(700)},
	{1000, decimal.NewFromInt(1200)},
}

// CalculateEventFee prices an event-waste booking. Non-positive attendee
// counts yield the zero value; callers validate the count first.
func CalculateEventFee(attendees int) EventFee {
	if attendees <= 0 {
		return EventFee{}
	}
	for _, band := range eventFeeBands {
		if attendees <= band.maxAttendees {
			return EventFee{Amount: band.fee}
		}
	}
	return EventFee{AdminAdjust: true}
}
