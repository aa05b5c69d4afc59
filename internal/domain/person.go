package domain

import "time"

// SponsorGroup (SP) is the sponsoring group a person is affiliated to.
// It only matters for filtering reports.
type SponsorGroup struct {
	ID          uint   `json:"id"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

// Person exists independently of membership.
type Person struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	BirthDate      time.Time `json:"birth_date"`
	SponsorGroupID uint      `json:"sponsor_group_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Member extends a Person with an affiliation date. A person is a
// member iff a Member record referencing them exists.
type Member struct {
	ID              uint      `json:"id"`
	PersonID        uint      `json:"person_id"`
	AffiliationDate time.Time `json:"affiliation_date"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
