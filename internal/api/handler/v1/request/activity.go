package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateActivityRequest struct {
	Description string  `json:"description"`
	Date        string  `json:"date" format:"YYYY-MM-DD"`
	Region      string  `json:"region"`
	Priority    int     `json:"priority"`
	Price       float64 `json:"price"`
}

// Validate checks shape only; the future-date rule and the price band
// need the live policy and are enforced in the service.
func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Region, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Priority, validation.Required, validation.Min(1), validation.Max(10)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.0)),
	)
}
