package response

import (
	"time"

	"github.com/clubtrack/club-api/internal/domain"
)

type ActivityReport struct {
	ActivityID    uint      `json:"activity_id"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Price         float64   `json:"price"`
	MemberCount   int       `json:"member_count"`
	GuestCount    int       `json:"guest_count"`
	ExpectedTotal float64   `json:"expected_total"`
	TotalPaid     float64   `json:"total_paid"`
	Remaining     float64   `json:"remaining"`
}

func NewActivityReports(reports []domain.ActivityReport) []ActivityReport {
	out := make([]ActivityReport, len(reports))
	for i, r := range reports {
		out[i] = ActivityReport{
			ActivityID:    r.ActivityID,
			Description:   r.Description,
			Date:          r.Date,
			Price:         round2(r.Price),
			MemberCount:   r.MemberCount,
			GuestCount:    r.GuestCount,
			ExpectedTotal: round2(r.ExpectedTotal),
			TotalPaid:     round2(r.TotalPaid),
			Remaining:     round2(r.Remaining),
		}
	}

	return out
}

type MemberReport struct {
	MemberID      uint    `json:"member_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	ActivityCount int     `json:"activity_count"`
	TotalDue      float64 `json:"total_due"`
	TotalPaid     float64 `json:"total_paid"`
	Remaining     float64 `json:"remaining"`
}

func NewMemberReports(reports []domain.MemberReport) []MemberReport {
	out := make([]MemberReport, len(reports))
	for i, r := range reports {
		out[i] = MemberReport{
			MemberID:      r.MemberID,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			ActivityCount: r.ActivityCount,
			TotalDue:      round2(r.TotalDue),
			TotalPaid:     round2(r.TotalPaid),
			Remaining:     round2(r.Remaining),
		}
	}

	return out
}

type MemberGuestsReport struct {
	MemberID         uint    `json:"member_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	MemberActivities int     `json:"member_activities"`
	GuestsBrought    int     `json:"guests_brought"`
	TotalDue         float64 `json:"total_due"`
	TotalPaid        float64 `json:"total_paid"`
	Remaining        float64 `json:"remaining"`
}

func NewMemberGuestsReports(reports []domain.MemberGuestsReport) []MemberGuestsReport {
	out := make([]MemberGuestsReport, len(reports))
	for i, r := range reports {
		out[i] = MemberGuestsReport{
			MemberID:         r.MemberID,
			FirstName:        r.FirstName,
			LastName:         r.LastName,
			MemberActivities: r.MemberActivities,
			GuestsBrought:    r.GuestsBrought,
			TotalDue:         round2(r.TotalDue),
			TotalPaid:        round2(r.TotalPaid),
			Remaining:        round2(r.Remaining),
		}
	}

	return out
}

type SPActivityReport struct {
	SponsorGroupID      uint      `json:"sponsor_group_id"`
	Region              string    `json:"region"`
	SPDescription       string    `json:"sp_description"`
	ActivityID          uint      `json:"activity_id"`
	ActivityDescription string    `json:"activity_description"`
	ActivityDate        time.Time `json:"activity_date"`
	PersonCount         int       `json:"person_count"`
	ExpectedTotal       float64   `json:"expected_total"`
	TotalPaid           float64   `json:"total_paid"`
	Remaining           float64   `json:"remaining"`
}

func NewSPActivityReports(reports []domain.SPActivityReport) []SPActivityReport {
	out := make([]SPActivityReport, len(reports))
	for i, r := range reports {
		out[i] = SPActivityReport{
			SponsorGroupID:      r.SponsorGroupID,
			Region:              r.Region,
			SPDescription:       r.SPDescription,
			ActivityID:          r.ActivityID,
			ActivityDescription: r.ActivityDescription,
			ActivityDate:        r.ActivityDate,
			PersonCount:         r.PersonCount,
			ExpectedTotal:       round2(r.ExpectedTotal),
			TotalPaid:           round2(r.TotalPaid),
			Remaining:           round2(r.Remaining),
		}
	}

	return out
}
