package repository

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

var (
	ErrPresenceNotFound  = dao.ErrPresenceNotFound
	ErrDuplicatePresence = dao.ErrDuplicatePresence
)

type PresenceDAO interface {
	Insert(ctx context.Context, presence dao.Presence) (dao.Presence, error)
	FindByID(ctx context.Context, id uint) (dao.Presence, error)
	FindAll(ctx context.Context) ([]dao.PresenceListing, error)
	CountGuestsBrought(ctx context.Context, memberID, activityID uint) (int, error)
	BillableRowsByActivity(ctx context.Context, activityID uint) ([]dao.BillableRow, error)
}

type PresenceRepository struct {
	dao PresenceDAO
}

func NewPresenceRepository(dao PresenceDAO) *PresenceRepository {
	return &PresenceRepository{
		dao: dao,
	}
}

// resolveAttendee turns the nullable-column storage shape into the
// domain variant exactly once, at the load boundary.
func resolveAttendee(memberID uint, guestPersonID *uint) domain.Attendee {
	if guestPersonID != nil {
		return domain.Attendee{
			Kind:          domain.AttendeeGuest,
			MemberID:      memberID,
			GuestPersonID: *guestPersonID,
		}
	}

	return domain.Attendee{
		Kind:     domain.AttendeeMember,
		MemberID: memberID,
	}
}

func (r *PresenceRepository) daoToDomain(p dao.Presence) domain.Presence {
	return domain.Presence{
		ID:         p.ID,
		ActivityID: p.ActivityID,
		Attendee:   resolveAttendee(p.MemberID, p.GuestPersonID),
		CreatedAt:  p.CreatedAt,
	}
}

func (r *PresenceRepository) Create(ctx context.Context, presence domain.Presence) (domain.Presence, error) {
	daoPresence := dao.Presence{
		ActivityID: presence.ActivityID,
		MemberID:   presence.Attendee.MemberID,
	}
	if presence.Attendee.Kind == domain.AttendeeGuest {
		guestID := presence.Attendee.GuestPersonID
		daoPresence.GuestPersonID = &guestID
	}

	created, err := r.dao.Insert(ctx, daoPresence)
	if err != nil {
		return domain.Presence{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PresenceRepository) FindByID(ctx context.Context, id uint) (domain.Presence, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Presence{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PresenceRepository) FindAll(ctx context.Context) ([]domain.PresenceListing, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	listings := make([]domain.PresenceListing, len(found))
	for i, l := range found {
		listings[i] = domain.PresenceListing{
			PresenceID:          l.PresenceID,
			ActivityID:          l.ActivityID,
			ActivityDescription: l.ActivityDescription,
			ActivityDate:        l.ActivityDate,
			ActivityPrice:       l.ActivityPrice,
			Attendee:            resolveAttendee(l.MemberID, l.GuestPersonID),
			FirstName:           l.FirstName,
			LastName:            l.LastName,
		}
	}

	return listings, nil
}

func (r *PresenceRepository) CountGuestsBrought(ctx context.Context, memberID, activityID uint) (int, error) {
	count, err := r.dao.CountGuestsBrought(ctx, memberID, activityID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountGuestsBrought -> %w", err)
	}

	return count, nil
}

func (r *PresenceRepository) BillablesByActivity(ctx context.Context, activityID uint) ([]domain.Billable, error) {
	rows, err := r.dao.BillableRowsByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.BillableRowsByActivity -> %w", err)
	}

	return billableRowsToDomain(rows), nil
}

func billableRowsToDomain(rows []dao.BillableRow) []domain.Billable {
	billables := make([]domain.Billable, len(rows))
	for i, row := range rows {
		billables[i] = domain.Billable{
			IsMember:      row.IsMember,
			GuestsBrought: row.GuestsBrought,
		}
	}

	return billables
}
