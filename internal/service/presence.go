package service

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
)

var ErrDuplicatePresence = repository.ErrDuplicatePresence

// ErrGuestIsMember rejects guest presences for people who hold a
// membership; a member attends on their own account.
var ErrGuestIsMember = fmt.Errorf("person is a member and must attend on their own account")

type PresenceRepository interface {
	Create(ctx context.Context, presence domain.Presence) (domain.Presence, error)
	FindByID(ctx context.Context, id uint) (domain.Presence, error)
	FindAll(ctx context.Context) ([]domain.PresenceListing, error)
	CountGuestsBrought(ctx context.Context, memberID, activityID uint) (int, error)
	BillablesByActivity(ctx context.Context, activityID uint) ([]domain.Billable, error)
}

type PresenceService struct {
	repo       PresenceRepository
	persons    PersonRepository
	activities ActivityRepository
}

func NewPresenceService(repo PresenceRepository, persons PersonRepository, activities ActivityRepository) *PresenceService {
	return &PresenceService{
		repo:       repo,
		persons:    persons,
		activities: activities,
	}
}

// Create records an attendance. The attendee is either the member
// themselves or a non-member guest the member brings; each natural
// person appears at most once per activity.
func (s *PresenceService) Create(ctx context.Context, presence domain.Presence) (domain.Presence, error) {
	if _, err := s.activities.FindByID(ctx, presence.ActivityID); err != nil {
		return domain.Presence{}, err
	}

	if _, err := s.persons.FindMemberByID(ctx, presence.Attendee.MemberID); err != nil {
		return domain.Presence{}, err
	}

	if presence.Attendee.Kind == domain.AttendeeGuest {
		if _, err := s.persons.FindPersonByID(ctx, presence.Attendee.GuestPersonID); err != nil {
			return domain.Presence{}, err
		}

		isMember, err := s.persons.IsPersonMember(ctx, presence.Attendee.GuestPersonID)
		if err != nil {
			return domain.Presence{}, fmt.Errorf("s.persons.IsPersonMember -> %w", err)
		}
		if isMember {
			return domain.Presence{}, ErrGuestIsMember
		}
	}

	created, err := s.repo.Create(ctx, presence)
	if err != nil {
		return domain.Presence{}, err
	}

	return created, nil
}

func (s *PresenceService) GetByID(ctx context.Context, id uint) (domain.Presence, error) {
	presence, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Presence{}, err
	}

	return presence, nil
}

func (s *PresenceService) List(ctx context.Context) ([]domain.PresenceListing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return listings, nil
}
