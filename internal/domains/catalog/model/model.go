package model

import (
	"tripgate/internal/domains/seatmap"
)

// Entities in this package are transient, request-scoped copies of core API records;
// the upstream service owns and persists them.

type Photo struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Room struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Price     float64         `json:"price"`
	Currency  string          `json:"currency"`
	Amenities map[string]bool `json:"amenities"`
	HotelID   string          `json:"hotel_id"`
	Photos    []Photo         `json:"photos"`
	Status    string          `json:"status"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Apartment struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Bedrooms      int         `json:"bedrooms"`
	Floors        int         `json:"floors"`
	PricePerNight float64     `json:"price_per_night"`
	PricePerMonth float64     `json:"price_per_month"`
	Currency      string      `json:"currency"`
	OwnerID       string      `json:"owner_id"`
	Photos        []Photo     `json:"photos"`
	Bookings      []DateRange `json:"bookings"`
}

type Bus struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Layout seatmap.Layout `json:"seat_layout"`
}

type SeatBooking struct {
	Seat int `json:"seat"`
}

type Journey struct {
	ID            string        `json:"id"`
	From          string        `json:"from"`
	To            string        `json:"to"`
	DepartureTime string        `json:"departure_time"`
	ReturnTime    string        `json:"return_time"`
	Price         float64       `json:"price"`
	Currency      string        `json:"currency"`
	Bus           Bus           `json:"bus"`
	Bookings      []SeatBooking `json:"bookings"`
}

type Retreat struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	PricingType string  `json:"pricing_type"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Capacity    int     `json:"capacity"`
	Photos      []Photo `json:"photos"`
}

const (
	PricingTypePackage   = "package"
	PricingTypePerPerson = "per_person"
)
