package domain

import "time"

// Billable is the minimal shape the discount engine needs to quote one
// presence when summarizing a whole activity or sponsor group.
type Billable struct {
	IsMember      bool
	GuestsBrought int
}

// PresenceListing is one attendance row with the billable person
// resolved to a name.
type PresenceListing struct {
	PresenceID          uint      `json:"presence_id"`
	ActivityID          uint      `json:"activity_id"`
	ActivityDescription string    `json:"activity_description"`
	ActivityDate        time.Time `json:"activity_date"`
	ActivityPrice       float64   `json:"activity_price"`
	Attendee            Attendee  `json:"attendee"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
}

// Report results carry full-precision sums; rounding happens only when
// they cross the response boundary.

type ActivityReport struct {
	ActivityID    uint
	Description   string
	Date          time.Time
	Price         float64
	MemberCount   int
	GuestCount    int
	ExpectedTotal float64
	TotalPaid     float64
	Remaining     float64
}

type MemberReport struct {
	MemberID      uint
	FirstName     string
	LastName      string
	ActivityCount int
	TotalDue      float64
	TotalPaid     float64
	Remaining     float64
}

type MemberGuestsReport struct {
	MemberID         uint
	FirstName        string
	LastName         string
	MemberActivities int
	GuestsBrought    int
	TotalDue         float64
	TotalPaid        float64
	Remaining        float64
}

type SPActivityReport struct {
	SponsorGroupID      uint
	Region              string
	SPDescription       string
	ActivityID          uint
	ActivityDescription string
	ActivityDate        time.Time
	PersonCount         int
	ExpectedTotal       float64
	TotalPaid           float64
	Remaining           float64
}
