package model

// Rate is a row of the exchange-rate table the core API publishes. RateToUSD is the
// amount of this currency equal to one US dollar.
type Rate struct {
	CurrencyCode string  `json:"currency_code"`
	RateToUSD    float64 `json:"rate_to_usd"`
}
