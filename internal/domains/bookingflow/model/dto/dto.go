package dto

import (
	"tripgate/internal/domains/bookingflow/model"
	"tripgate/internal/domains/seatmap"
)

type StartFlowRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=room apartment ticket retreat" example:"room"`
	ObjectID string `json:"object_id" validate:"required" example:"7e2f9c1a"`
}

type SelectSeatRequest struct {
	Seat int `json:"seat" validate:"required,min=1" example:"12"`
}

type SubmitFormRequest struct {
	FullName      string `json:"full_name" validate:"required,fullname" example:"Jane Doe"`
	Email         string `json:"email" validate:"required,email" example:"jane@example.com"`
	Phone         string `json:"phone" validate:"required,phone" example:"+237 650000000"`
	Country       string `json:"country" validate:"required" example:"Cameroon"`
	StartDate     string `json:"start_date,omitempty" example:"2025-06-01"`
	EndDate       string `json:"end_date,omitempty" example:"2025-06-05"`
	Guests        int    `json:"guests,omitempty" validate:"omitempty,min=1" example:"2"`
	PricingMethod string `json:"pricing_method,omitempty" validate:"omitempty,oneof=nightly monthly" example:"nightly"`
}

type SubmitPaymentRequest struct {
	CurrencyCode  string `json:"currency_code" validate:"required" example:"XAF"`
	PaymentMethod string `json:"payment_method" validate:"required" example:"mobile_money"`
}

type SubmitOTPRequest struct {
	OTP string `json:"otp" validate:"required" example:"482913"`
}

// EntityResponse is the slice of the snapshot a client needs for rendering.
type EntityResponse struct {
	Kind      string  `json:"kind"`
	ObjectID  string  `json:"object_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Currency  string  `json:"currency"`
}

type FlowResponse struct {
	ID            string         `json:"id"`
	Kind          string         `json:"kind"`
	State         string         `json:"state"`
	Entity        EntityResponse `json:"entity"`
	Seats         seatmap.Grid   `json:"seats,omitempty"`
	Seat          int            `json:"seat,omitempty"`
	Form          model.Form     `json:"form"`
	DayCount      int            `json:"day_count,omitempty"`
	BaseTotal     float64        `json:"base_total,omitempty"`
	AmountToPay   float64        `json:"amount_to_pay,omitempty"`
	CurrencyCode  string         `json:"currency_code,omitempty"`
	PaymentMethod string         `json:"payment_method,omitempty"`
}

func (r *FlowResponse) FromFlow(flow model.Flow) {
	r.ID = flow.ID
	r.Kind = flow.Kind
	r.State = flow.State
	r.Entity = EntityResponse{
		Kind:      flow.Entity.Kind,
		ObjectID:  flow.Entity.ObjectID,
		Name:      flow.Entity.Name,
		BasePrice: flow.Entity.BasePrice,
		Currency:  flow.Entity.Currency,
	}
	r.Seat = flow.Seat
	r.Form = flow.Form
	r.DayCount = flow.DayCount
	r.BaseTotal = flow.BaseTotal
	r.AmountToPay = flow.AmountToPay
	r.CurrencyCode = flow.CurrencyCode
	r.PaymentMethod = flow.PaymentMethod

	if flow.State == model.StateSelectSeat {
		r.Seats = seatmap.Build(flow.Entity.SeatLayout, flow.Entity.BookedSeats)
	}
}

// BookingPayload is the request body posted upstream once the OTP clears.
type BookingPayload struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Country       string  `json:"country"`
	ObjectType    string  `json:"object_type"`
	ObjectID      string  `json:"object_id"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	Seat          int     `json:"seat,omitempty"`
	Guests        int     `json:"guests,omitempty"`
	AmountToPay   float64 `json:"amount_to_pay"`
	CurrencyCode  string  `json:"currency_code"`
	PaymentMethod string  `json:"payment_method"`
}

type BookingResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
