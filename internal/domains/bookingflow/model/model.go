package model

import (
	"math"
	"time"

	"tripgate/internal/domains/seatmap"
	"tripgate/shared/constant"
)

// Flow states, linear and forward-only. Ticket flows prepend StateSelectSeat.
const (
	StateSelectSeat = "select_seat"
	StateForm       = "form"
	StatePayment    = "payment"
	StateOTP        = "otp"
	StateSuccess    = "success"
)

const (
	KindRoom      = "room"
	KindApartment = "apartment"
	KindTicket    = "ticket"
	KindRetreat   = "retreat"
)

const (
	PricingMethodNightly = "nightly"
	PricingMethodMonthly = "monthly"
)

// BookedRange is a date range already taken for an entity, as reported upstream.
type BookedRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Entity is the snapshot of the bookable object taken when the flow starts. The
// snapshot keeps the flow self-contained; the core API stays the source of truth
// and may still reject the booking on its own rules.
type Entity struct {
	Kind         string         `json:"kind"`
	ObjectID     string         `json:"object_id"`
	Name         string         `json:"name"`
	BasePrice    float64        `json:"base_price"`
	MonthlyPrice float64        `json:"monthly_price,omitempty"`
	PerPerson    bool           `json:"per_person,omitempty"`
	Currency     string         `json:"currency"`
	Bookings     []BookedRange  `json:"bookings,omitempty"`
	SeatLayout   seatmap.Layout `json:"seat_layout,omitempty"`
	BookedSeats  []int          `json:"booked_seats,omitempty"`
}

// Form holds the contact and stay details gathered in the form state.
type Form struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	Guests        int    `json:"guests,omitempty"`
	PricingMethod string `json:"pricing_method,omitempty"`
}

// Flow is one in-progress booking, persisted in redis until it succeeds, is
// abandoned, or its TTL runs out.
type Flow struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	State         string    `json:"state"`
	Entity        Entity    `json:"entity"`
	Seat          int       `json:"seat,omitempty"`
	Form          Form      `json:"form"`
	DayCount      int       `json:"day_count,omitempty"`
	BaseTotal     float64   `json:"base_total,omitempty"`
	AmountToPay   float64   `json:"amount_to_pay,omitempty"`
	CurrencyCode  string    `json:"currency_code,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Steps returns the state sequence for the flow's kind.
func (f *Flow) Steps() []string {
	if f.Kind == KindTicket {
		return []string{StateSelectSeat, StateForm, StatePayment, StateOTP, StateSuccess}
	}

	return []string{StateForm, StatePayment, StateOTP, StateSuccess}
}

// PreviousState returns the state one step back, or empty when the flow is at
// its first state or already succeeded.
func (f *Flow) PreviousState() string {
	if f.State == StateSuccess {
		return constant.Empty
	}

	steps := f.Steps()
	for i, step := range steps {
		if step == f.State && i > 0 {
			return steps[i-1]
		}
	}

	return constant.Empty
}

// DateRange is a parsed, inclusive day range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func ParseDay(value string) (time.Time, error) {
	return time.Parse(constant.DayFormat, value)
}

func ParseDateRange(startDate, endDate string) (DateRange, error) {
	start, err := ParseDay(startDate)
	if err != nil {
		return DateRange{}, err
	}

	end, err := ParseDay(endDate)
	if err != nil {
		return DateRange{}, err
	}

	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two inclusive ranges [a,b] and [c,d] share at least
// one day: a<=d and b>=c. Ranges touching on a boundary day do overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// DayCount is the number of nights between start and end, rounded up and never
// negative.
func (r DateRange) DayCount() int {
	hours := r.End.Sub(r.Start).Hours()
	if hours <= 0 {
		return 0
	}

	return int(math.Ceil(hours / constant.HoursPerDay))
}

// MonthCount converts a day count into billed months, rounded up.
func MonthCount(days int) int {
	if days <= 0 {
		return 0
	}

	return int(math.Ceil(float64(days) / constant.DaysPerMonth))
}
