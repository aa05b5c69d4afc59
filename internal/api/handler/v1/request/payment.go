package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePaymentRequest struct {
	PresenceID uint    `json:"presence_id"`
	Amount     float64 `json:"amount"`
}

// Validate rejects the zero and negative amounts up front; the
// remaining-balance ceiling is checked transactionally downstream.
func (req *CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PresenceID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
	)
}

type UpdatePolicyRequest struct {
	DiscountRate   float64 `json:"discount_rate"`
	GuestThreshold int     `json:"guest_threshold"`
}

func (req *UpdatePolicyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DiscountRate, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&req.GuestThreshold, validation.Min(0)),
	)
}
