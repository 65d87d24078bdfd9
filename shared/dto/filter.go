package dto

import (
	"net/url"
	"strconv"
)

// ListingFilter carries the browse filters the public site exposes. Encode turns it
// into the query string shape the core API listing endpoints expect; zero values are
// omitted so the upstream defaults apply.
type ListingFilter struct {
	PriceMin  float64 `json:"price_min"  validate:"omitempty,gte=0"`
	PriceMax  float64 `json:"price_max"  validate:"omitempty,gte=0"`
	Category  string  `json:"category"   validate:"omitempty,max=64"`
	From      string  `json:"from"       validate:"omitempty,max=128"`
	To        string  `json:"to"         validate:"omitempty,max=128"`
	StartDate string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string  `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (f *ListingFilter) Encode(query url.Values) {
	if f.PriceMin > 0 {
		query.Set("price_min", strconv.FormatFloat(f.PriceMin, 'f', -1, 64))
	}

	if f.PriceMax > 0 {
		query.Set("price_max", strconv.FormatFloat(f.PriceMax, 'f', -1, 64))
	}

	if f.Category != "" {
		query.Set("category", f.Category)
	}

	if f.From != "" {
		query.Set("from", f.From)
	}

	if f.To != "" {
		query.Set("to", f.To)
	}

	if f.StartDate != "" {
		query.Set("start_date", f.StartDate)
	}

	if f.EndDate != "" {
		query.Set("end_date", f.EndDate)
	}
}

// FromQuery populates the filter from an incoming request's query values.
func (f *ListingFilter) FromQuery(query url.Values) {
	if v := query.Get("price_min"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			f.PriceMin = parsed
		}
	}

	if v := query.Get("price_max"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			f.PriceMax = parsed
		}
	}

	f.Category = query.Get("category")
	f.From = query.Get("from")
	f.To = query.Get("to")
	f.StartDate = query.Get("start_date")
	f.EndDate = query.Get("end_date")
}
