package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreatePresenceRequest records either the member's own attendance
// (guest_person_id absent) or a guest the member brings.
type CreatePresenceRequest struct {
	ActivityID    uint  `json:"activity_id"`
	MemberID      uint  `json:"member_id"`
	GuestPersonID *uint `json:"guest_person_id,omitempty"`
}

func (req *CreatePresenceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.MemberID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.GuestPersonID, validation.Min(uint(1))),
	)
}
