package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
	"github.com/clubtrack/club-api/internal/service"
)

type fakePersonRepo struct {
	sponsorGroups map[uint]domain.SponsorGroup
	persons       map[uint]domain.Person
	members       map[uint]domain.Member
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{
		sponsorGroups: map[uint]domain.SponsorGroup{},
		persons:       map[uint]domain.Person{},
		members:       map[uint]domain.Member{},
	}
}

func (f *fakePersonRepo) CreateSponsorGroup(_ context.Context, sp domain.SponsorGroup) (domain.SponsorGroup, error) {
	sp.ID = uint(len(f.sponsorGroups) + 1)
	f.sponsorGroups[sp.ID] = sp

	return sp, nil
}

func (f *fakePersonRepo) FindSponsorGroups(_ context.Context, region string) ([]domain.SponsorGroup, error) {
	var out []domain.SponsorGroup
	for _, sp := range f.sponsorGroups {
		if region == "" || sp.Region == region {
			out = append(out, sp)
		}
	}

	return out, nil
}

func (f *fakePersonRepo) FindSponsorGroupByID(_ context.Context, id uint) (domain.SponsorGroup, error) {
	sp, ok := f.sponsorGroups[id]
	if !ok {
		return domain.SponsorGroup{}, repository.ErrSponsorGroupNotFound
	}

	return sp, nil
}

func (f *fakePersonRepo) CreatePerson(_ context.Context, person domain.Person) (domain.Person, error) {
	person.ID = uint(len(f.persons) + 1)
	f.persons[person.ID] = person

	return person, nil
}

func (f *fakePersonRepo) FindPersonByID(_ context.Context, id uint) (domain.Person, error) {
	person, ok := f.persons[id]
	if !ok {
		return domain.Person{}, repository.ErrPersonNotFound
	}

	return person, nil
}

func (f *fakePersonRepo) FindPersons(_ context.Context, nonMembersOnly bool) ([]domain.Person, error) {
	var out []domain.Person
	for _, person := range f.persons {
		if nonMembersOnly {
			isMember := false
			for _, m := range f.members {
				if m.PersonID == person.ID {
					isMember = true
					break
				}
			}
			if isMember {
				continue
			}
		}
		out = append(out, person)
	}

	return out, nil
}

func (f *fakePersonRepo) CreateMember(_ context.Context, member domain.Member) (domain.Member, error) {
	for _, m := range f.members {
		if m.PersonID == member.PersonID {
			return domain.Member{}, repository.ErrPersonAlreadyMember
		}
	}

	member.ID = uint(len(f.members) + 1)
	f.members[member.ID] = member

	return member, nil
}

func (f *fakePersonRepo) FindMemberByID(_ context.Context, id uint) (domain.Member, error) {
	member, ok := f.members[id]
	if !ok {
		return domain.Member{}, repository.ErrMemberNotFound
	}

	return member, nil
}

func (f *fakePersonRepo) FindMembers(_ context.Context) ([]domain.Member, error) {
	var out []domain.Member
	for _, m := range f.members {
		out = append(out, m)
	}

	return out, nil
}

func (f *fakePersonRepo) IsPersonMember(_ context.Context, personID uint) (bool, error) {
	for _, m := range f.members {
		if m.PersonID == personID {
			return true, nil
		}
	}

	return false, nil
}

type fakePresenceStore struct {
	presences map[uint]domain.Presence
}

func (f *fakePresenceStore) Create(_ context.Context, presence domain.Presence) (domain.Presence, error) {
	for _, existing := range f.presences {
		if existing.ActivityID == presence.ActivityID && existing.Attendee == presence.Attendee {
			return domain.Presence{}, repository.ErrDuplicatePresence
		}
	}

	presence.ID = uint(len(f.presences) + 1)
	f.presences[presence.ID] = presence

	return presence, nil
}

func (f *fakePresenceStore) FindByID(_ context.Context, id uint) (domain.Presence, error) {
	presence, ok := f.presences[id]
	if !ok {
		return domain.Presence{}, repository.ErrPresenceNotFound
	}

	return presence, nil
}

func (f *fakePresenceStore) FindAll(_ context.Context) ([]domain.PresenceListing, error) {
	return nil, nil
}

func (f *fakePresenceStore) CountGuestsBrought(_ context.Context, memberID, activityID uint) (int, error) {
	count := 0
	for _, p := range f.presences {
		if p.ActivityID == activityID && p.Attendee.Kind == domain.AttendeeGuest && p.Attendee.MemberID == memberID {
			count++
		}
	}

	return count, nil
}

func (f *fakePresenceStore) BillablesByActivity(_ context.Context, _ uint) ([]domain.Billable, error) {
	return nil, nil
}

func newPresenceFixture(t *testing.T) (*service.PresenceService, *fakePersonRepo, *fakeActivityStore) {
	t.Helper()

	persons := newFakePersonRepo()
	ctx := context.Background()

	sp, err := persons.CreateSponsorGroup(ctx, domain.SponsorGroup{Region: "North"})
	require.NoError(t, err)

	memberPerson, err := persons.CreatePerson(ctx, domain.Person{FirstName: "Ada", SponsorGroupID: sp.ID})
	require.NoError(t, err)
	_, err = persons.CreateMember(ctx, domain.Member{PersonID: memberPerson.ID, AffiliationDate: time.Now()})
	require.NoError(t, err)

	_, err = persons.CreatePerson(ctx, domain.Person{FirstName: "Grace", SponsorGroupID: sp.ID})
	require.NoError(t, err)

	activities := &fakeActivityStore{}
	_, err = activities.Create(ctx, domain.Activity{Description: "Hike", Price: 100})
	require.NoError(t, err)

	store := &fakePresenceStore{presences: map[uint]domain.Presence{}}
	svc := service.NewPresenceService(store, persons, activities)

	return svc, persons, activities
}

func TestPresenceService_Create_MemberPresence(t *testing.T) {
	svc, _, _ := newPresenceFixture(t)

	created, err := svc.Create(context.Background(), domain.Presence{
		ActivityID: 1,
		Attendee:   domain.Attendee{Kind: domain.AttendeeMember, MemberID: 1},
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.Attendee.IsMember())
}

func TestPresenceService_Create_GuestPresence(t *testing.T) {
	svc, _, _ := newPresenceFixture(t)

	created, err := svc.Create(context.Background(), domain.Presence{
		ActivityID: 1,
		Attendee:   domain.Attendee{Kind: domain.AttendeeGuest, MemberID: 1, GuestPersonID: 2},
	})

	require.NoError(t, err)
	assert.False(t, created.Attendee.IsMember())
	assert.Equal(t, uint(1), created.Attendee.MemberID)
}

func TestPresenceService_Create_RejectsMemberAsGuest(t *testing.T) {
	svc, _, _ := newPresenceFixture(t)

	// Person 1 holds the membership; bringing them as a guest is wrong.
	_, err := svc.Create(context.Background(), domain.Presence{
		ActivityID: 1,
		Attendee:   domain.Attendee{Kind: domain.AttendeeGuest, MemberID: 1, GuestPersonID: 1},
	})

	assert.ErrorIs(t, err, service.ErrGuestIsMember)
}

func TestPresenceService_Create_RejectsDuplicate(t *testing.T) {
	svc, _, _ := newPresenceFixture(t)

	presence := domain.Presence{
		ActivityID: 1,
		Attendee:   domain.Attendee{Kind: domain.AttendeeMember, MemberID: 1},
	}

	_, err := svc.Create(context.Background(), presence)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), presence)
	assert.ErrorIs(t, err, service.ErrDuplicatePresence)
}

func TestPresenceService_Create_UnknownReferences(t *testing.T) {
	svc, _, _ := newPresenceFixture(t)

	_, err := svc.Create(context.Background(), domain.Presence{
		ActivityID: 99,
		Attendee:   domain.Attendee{Kind: domain.AttendeeMember, MemberID: 1},
	})
	assert.ErrorIs(t, err, service.ErrActivityNotFound)

	_, err = svc.Create(context.Background(), domain.Presence{
		ActivityID: 1,
		Attendee:   domain.Attendee{Kind: domain.AttendeeMember, MemberID: 99},
	})
	assert.ErrorIs(t, err, service.ErrMemberNotFound)

	_, err = svc.Create(context.Background(), domain.Presence{
		ActivityID: 1,
		Attendee:   domain.Attendee{Kind: domain.AttendeeGuest, MemberID: 1, GuestPersonID: 99},
	})
	assert.ErrorIs(t, err, service.ErrPersonNotFound)
}
