package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

type ReportDAO interface {
	ActivityRollups(ctx context.Context) ([]dao.ActivityRollup, error)
	MemberOwnPresences(ctx context.Context, memberID uint, start, end time.Time) ([]dao.MemberOwnPresenceRow, error)
	MemberOwnPayments(ctx context.Context, memberID uint, start, end time.Time) (float64, error)
	GuestPresencesOfMember(ctx context.Context, memberID uint, start, end time.Time) ([]dao.GuestPresenceRow, error)
	GuestPaymentsOfMember(ctx context.Context, memberID uint, start, end time.Time) (float64, error)
	SPActivityRollups(ctx context.Context, region string) ([]dao.SPActivityRollup, error)
	SPActivityBillableRows(ctx context.Context, sponsorGroupID, activityID uint) ([]dao.BillableRow, error)
}

// Aggregate row shapes handed to the report service. They are raw
// facts; the service quotes discounts and derives the money columns.

type ActivityRollup struct {
	ActivityID  uint
	Description string
	Date        time.Time
	Price       float64
	MemberCount int
	GuestCount  int
	TotalPaid   float64
}

type MemberOwnPresence struct {
	ActivityID    uint
	Price         float64
	GuestsBrought int
}

type GuestPresence struct {
	ActivityID    uint
	GuestPersonID uint
	Price         float64
}

type SPActivityRollup struct {
	SponsorGroupID      uint
	Region              string
	SPDescription       string
	ActivityID          uint
	ActivityDescription string
	ActivityDate        time.Time
	ActivityPrice       float64
	PersonCount         int
	TotalPaid           float64
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) ActivityRollups(ctx context.Context) ([]ActivityRollup, error) {
	rows, err := r.dao.ActivityRollups(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ActivityRollups -> %w", err)
	}

	rollups := make([]ActivityRollup, len(rows))
	for i, row := range rows {
		rollups[i] = ActivityRollup{
			ActivityID:  row.ActivityID,
			Description: row.Description,
			Date:        row.Date,
			Price:       row.Price,
			MemberCount: row.MemberCount,
			GuestCount:  row.GuestCount,
			TotalPaid:   row.TotalPaid,
		}
	}

	return rollups, nil
}

func (r *ReportRepository) MemberOwnPresences(ctx context.Context, memberID uint, start, end time.Time) ([]MemberOwnPresence, error) {
	rows, err := r.dao.MemberOwnPresences(ctx, memberID, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.MemberOwnPresences -> %w", err)
	}

	presences := make([]MemberOwnPresence, len(rows))
	for i, row := range rows {
		presences[i] = MemberOwnPresence{
			ActivityID:    row.ActivityID,
			Price:         row.Price,
			GuestsBrought: row.GuestsBrought,
		}
	}

	return presences, nil
}

func (r *ReportRepository) MemberOwnPayments(ctx context.Context, memberID uint, start, end time.Time) (float64, error) {
	totalPaid, err := r.dao.MemberOwnPayments(ctx, memberID, start, end)
	if err != nil {
		return 0, fmt.Errorf("r.dao.MemberOwnPayments -> %w", err)
	}

	return totalPaid, nil
}

func (r *ReportRepository) GuestPresencesOfMember(ctx context.Context, memberID uint, start, end time.Time) ([]GuestPresence, error) {
	rows, err := r.dao.GuestPresencesOfMember(ctx, memberID, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GuestPresencesOfMember -> %w", err)
	}

	presences := make([]GuestPresence, len(rows))
	for i, row := range rows {
		presences[i] = GuestPresence{
			ActivityID:    row.ActivityID,
			GuestPersonID: row.GuestPersonID,
			Price:         row.Price,
		}
	}

	return presences, nil
}

func (r *ReportRepository) GuestPaymentsOfMember(ctx context.Context, memberID uint, start, end time.Time) (float64, error) {
	totalPaid, err := r.dao.GuestPaymentsOfMember(ctx, memberID, start, end)
	if err != nil {
		return 0, fmt.Errorf("r.dao.GuestPaymentsOfMember -> %w", err)
	}

	return totalPaid, nil
}

func (r *ReportRepository) SPActivityRollups(ctx context.Context, region string) ([]SPActivityRollup, error) {
	rows, err := r.dao.SPActivityRollups(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SPActivityRollups -> %w", err)
	}

	rollups := make([]SPActivityRollup, len(rows))
	for i, row := range rows {
		rollups[i] = SPActivityRollup{
			SponsorGroupID:      row.SponsorGroupID,
			Region:              row.Region,
			SPDescription:       row.SPDescription,
			ActivityID:          row.ActivityID,
			ActivityDescription: row.ActivityDescription,
			ActivityDate:        row.ActivityDate,
			ActivityPrice:       row.ActivityPrice,
			PersonCount:         row.PersonCount,
			TotalPaid:           row.TotalPaid,
		}
	}

	return rollups, nil
}

func (r *ReportRepository) SPActivityBillables(ctx context.Context, sponsorGroupID, activityID uint) ([]domain.Billable, error) {
	rows, err := r.dao.SPActivityBillableRows(ctx, sponsorGroupID, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SPActivityBillableRows -> %w", err)
	}

	return billableRowsToDomain(rows), nil
}
