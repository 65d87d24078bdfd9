package events

import "time"

// BookingCreated is published after the core API accepts a booking. The worker
// consumes it to send the confirmation email.
type BookingCreated struct {
	FlowID       string    `json:"flow_id"`
	BookingID    string    `json:"booking_id,omitempty"`
	Kind         string    `json:"kind"`
	ObjectID     string    `json:"object_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AmountToPay  float64   `json:"amount_to_pay"`
	CurrencyCode string    `json:"currency_code"`
	CreatedAt    time.Time `json:"created_at"`
}
