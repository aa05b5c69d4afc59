package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSponsorGroupRequest struct {
	Region      string `json:"region"`
	Description string `json:"description"`
}

func (req *CreateSponsorGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Region, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}

type CreatePersonRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	BirthDate      string `json:"birth_date" format:"YYYY-MM-DD"`
	SponsorGroupID uint   `json:"sponsor_group_id"`
}

func (req *CreatePersonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.BirthDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.SponsorGroupID, validation.Required, validation.Min(uint(1))),
	)
}

type CreateMemberRequest struct {
	PersonID        uint   `json:"person_id"`
	AffiliationDate string `json:"affiliation_date" format:"YYYY-MM-DD"`
}

func (req *CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PersonID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.AffiliationDate, validation.Date("2006-01-02")),
	)
}
