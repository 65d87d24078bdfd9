package dto

import "encoding/json"

type VerifyRequest struct {
	TransactionID string `json:"transaction_id" validate:"required" example:"8412734"`
	TxRef         string `json:"tx_ref" validate:"required" example:"trip-7e2f9c1a"`
	Status        string `json:"status" validate:"required" example:"successful"`
}

// VerifyResponse carries the gateway's confirmation untouched; its shape is
// owned upstream.
type VerifyResponse struct {
	Confirmation json.RawMessage `json:"confirmation"`
}
