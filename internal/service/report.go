package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
)

type ReportRepository interface {
	ActivityRollups(ctx context.Context) ([]repository.ActivityRollup, error)
	MemberOwnPresences(ctx context.Context, memberID uint, start, end time.Time) ([]repository.MemberOwnPresence, error)
	MemberOwnPayments(ctx context.Context, memberID uint, start, end time.Time) (float64, error)
	GuestPresencesOfMember(ctx context.Context, memberID uint, start, end time.Time) ([]repository.GuestPresence, error)
	GuestPaymentsOfMember(ctx context.Context, memberID uint, start, end time.Time) (float64, error)
	SPActivityRollups(ctx context.Context, region string) ([]repository.SPActivityRollup, error)
	SPActivityBillables(ctx context.Context, sponsorGroupID, activityID uint) ([]domain.Billable, error)
}

// ReportService assembles the financial read models. Storage hands it
// raw attendance and payment facts; every money column is derived here
// through the discount engine against the policy read at the start of
// the report, so a policy change reshapes all reports on the next
// request.
type ReportService struct {
	reports   ReportRepository
	presences BillingPresenceRepository
	policies  BillingPolicyRepository
	persons   PersonRepository
}

func NewReportService(
	reports ReportRepository,
	presences BillingPresenceRepository,
	policies BillingPolicyRepository,
	persons PersonRepository,
) *ReportService {
	return &ReportService{
		reports:   reports,
		presences: presences,
		policies:  policies,
		persons:   persons,
	}
}

// ActivityStates reports, per activity, the head counts and how much
// money is expected versus collected.
func (s *ReportService) ActivityStates(ctx context.Context) ([]domain.ActivityReport, error) {
	policy, err := s.policies.FindOrZero(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.policies.FindOrZero -> %w", err)
	}

	rollups, err := s.reports.ActivityRollups(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.ActivityReport, len(rollups))
	for i, rollup := range rollups {
		billables, err := s.presences.BillablesByActivity(ctx, rollup.ActivityID)
		if err != nil {
			return nil, fmt.Errorf("s.presences.BillablesByActivity -> %w", err)
		}

		expected := TotalExpected(policy, rollup.Price, billables)
		reports[i] = domain.ActivityReport{
			ActivityID:    rollup.ActivityID,
			Description:   rollup.Description,
			Date:          rollup.Date,
			Price:         rollup.Price,
			MemberCount:   rollup.MemberCount,
			GuestCount:    rollup.GuestCount,
			ExpectedTotal: expected,
			TotalPaid:     rollup.TotalPaid,
			Remaining:     expected - rollup.TotalPaid,
		}
	}

	return reports, nil
}

// MemberStates reports each member's own attendance bill over a date
// range. Guest presences are billed to the guest's row and excluded
// here.
func (s *ReportService) MemberStates(ctx context.Context, start, end time.Time) ([]domain.MemberReport, error) {
	policy, err := s.policies.FindOrZero(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.policies.FindOrZero -> %w", err)
	}

	members, err := s.persons.FindMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.persons.FindMembers -> %w", err)
	}

	reports := make([]domain.MemberReport, len(members))
	for i, member := range members {
		own, err := s.reports.MemberOwnPresences(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		totalDue := 0.0
		for _, presence := range own {
			totalDue += policy.Quote(presence.Price, true, presence.GuestsBrought).DiscountedPrice
		}

		totalPaid, err := s.reports.MemberOwnPayments(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		reports[i] = domain.MemberReport{
			MemberID:      member.ID,
			FirstName:     member.FirstName,
			LastName:      member.LastName,
			ActivityCount: len(own),
			TotalDue:      totalDue,
			TotalPaid:     totalPaid,
			Remaining:     totalDue - totalPaid,
		}
	}

	return reports, nil
}

// MemberGuestStates extends the member report with the full-price
// bills of the guests each member brought.
func (s *ReportService) MemberGuestStates(ctx context.Context, start, end time.Time) ([]domain.MemberGuestsReport, error) {
	policy, err := s.policies.FindOrZero(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.policies.FindOrZero -> %w", err)
	}

	members, err := s.persons.FindMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.persons.FindMembers -> %w", err)
	}

	reports := make([]domain.MemberGuestsReport, len(members))
	for i, member := range members {
		own, err := s.reports.MemberOwnPresences(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		totalDue := 0.0
		for _, presence := range own {
			totalDue += policy.Quote(presence.Price, true, presence.GuestsBrought).DiscountedPrice
		}

		guestPresences, err := s.reports.GuestPresencesOfMember(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		// Guests always pay the base price; a guest presence never
		// earns a discount, whatever it did for its bringer.
		distinctGuests := make(map[uint]struct{}, len(guestPresences))
		for _, presence := range guestPresences {
			totalDue += presence.Price
			distinctGuests[presence.GuestPersonID] = struct{}{}
		}

		ownPaid, err := s.reports.MemberOwnPayments(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		guestPaid, err := s.reports.GuestPaymentsOfMember(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}

		totalPaid := ownPaid + guestPaid
		reports[i] = domain.MemberGuestsReport{
			MemberID:         member.ID,
			FirstName:        member.FirstName,
			LastName:         member.LastName,
			MemberActivities: len(own),
			GuestsBrought:    len(distinctGuests),
			TotalDue:         totalDue,
			TotalPaid:        totalPaid,
			Remaining:        totalDue - totalPaid,
		}
	}

	return reports, nil
}

// SPActivityStates reports the sponsor-group by activity grid,
// optionally narrowed to one region. Cells with no attendees still
// appear with zero expectations.
func (s *ReportService) SPActivityStates(ctx context.Context, region string) ([]domain.SPActivityReport, error) {
	policy, err := s.policies.FindOrZero(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.policies.FindOrZero -> %w", err)
	}

	rollups, err := s.reports.SPActivityRollups(ctx, region)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.SPActivityReport, len(rollups))
	for i, rollup := range rollups {
		expected := 0.0
		if rollup.PersonCount > 0 {
			billables, err := s.reports.SPActivityBillables(ctx, rollup.SponsorGroupID, rollup.ActivityID)
			if err != nil {
				return nil, err
			}
			expected = TotalExpected(policy, rollup.ActivityPrice, billables)
		}

		reports[i] = domain.SPActivityReport{
			SponsorGroupID:      rollup.SponsorGroupID,
			Region:              rollup.Region,
			SPDescription:       rollup.SPDescription,
			ActivityID:          rollup.ActivityID,
			ActivityDescription: rollup.ActivityDescription,
			ActivityDate:        rollup.ActivityDate,
			PersonCount:         rollup.PersonCount,
			ExpectedTotal:       expected,
			TotalPaid:           rollup.TotalPaid,
			Remaining:           expected - rollup.TotalPaid,
		}
	}

	return reports, nil
}
