package entity

import (
	"math"

	"github.com/google/uuid"
)

// SubscriptionTier is the order's delivery cadence. The wire values are
// what the marketplace API expects in the order payload.
type SubscriptionTier string

const (
	TierNone    SubscriptionTier = ""
	TierDaily   SubscriptionTier = "day"
	TierWeekly  SubscriptionTier = "week"
	TierMonthly SubscriptionTier = "month"
)

// IsValid reports whether the tier is one a user can actually pick.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierDaily, TierWeekly, TierMonthly:
		return true
	default:
		return false
	}
}

// Discount returns the fraction subtracted from the base price for the
// tier: 5% weekly, 8% monthly, nothing otherwise.
func (t SubscriptionTier) Discount() float64 {
	switch t {
	case TierWeekly:
		return 0.05
	case TierMonthly:
		return 0.08
	default:
		return 0
	}
}

// Address is one delivery address candidate attached to the order context.
type Address struct {
	ID         int64
	Type       string
	DoorNumber string
	Street     string
	Area       string
	City       string
	State      string
	PostalCode string
}

// OrderContext is the server-provided seed for the checkout screen: unit
// price, profile fields, and candidate addresses. The checkout screen has
// no fetch path of its own and depends entirely on this being carried in
// by navigation.
type OrderContext struct {
	ServiceID int64
	Price     float64
	Name      string
	Phone     string
	Addresses []Address
}

// OrderDraft is the mutable in-progress checkout record. It exists from
// the moment a listing item is selected until submission succeeds or the
// user cancels.
type OrderDraft struct {
	ServiceID int64
	UnitPrice float64
	Quantity  int
	Tier      SubscriptionTier
	AddressID int64
}

// Total is a pure function of unit price, quantity and tier. It is
// recomputed after every mutation; monetary truncation happens only once,
// at submission.
func (d OrderDraft) Total() float64 {
	base := d.UnitPrice * float64(d.Quantity)

	return base - base*d.Tier.Discount()
}

// Order is the final submission payload.
type Order struct {
	UserID    uuid.UUID
	AddressID int64
	Quantity  int
	ServiceID int64
	Amount    float64
}

// TruncateAmount truncates a monetary total to two decimal places. Applied
// exactly once, at the submission boundary.
func TruncateAmount(total float64) float64 {
	return math.Trunc(total*100) / 100
}
