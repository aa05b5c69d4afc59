package service

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
)

var (
	ErrSponsorGroupNotFound = repository.ErrSponsorGroupNotFound
	ErrPersonNotFound       = repository.ErrPersonNotFound
	ErrMemberNotFound       = repository.ErrMemberNotFound
	ErrPersonAlreadyMember  = repository.ErrPersonAlreadyMember
)

type PersonRepository interface {
	CreateSponsorGroup(ctx context.Context, sp domain.SponsorGroup) (domain.SponsorGroup, error)
	FindSponsorGroups(ctx context.Context, region string) ([]domain.SponsorGroup, error)
	FindSponsorGroupByID(ctx context.Context, id uint) (domain.SponsorGroup, error)
	CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	FindPersonByID(ctx context.Context, id uint) (domain.Person, error)
	FindPersons(ctx context.Context, nonMembersOnly bool) ([]domain.Person, error)
	CreateMember(ctx context.Context, member domain.Member) (domain.Member, error)
	FindMemberByID(ctx context.Context, id uint) (domain.Member, error)
	FindMembers(ctx context.Context) ([]domain.Member, error)
	IsPersonMember(ctx context.Context, personID uint) (bool, error)
}

type PersonService struct {
	repo PersonRepository
}

func NewPersonService(repo PersonRepository) *PersonService {
	return &PersonService{
		repo: repo,
	}
}

func (s *PersonService) CreateSponsorGroup(ctx context.Context, sp domain.SponsorGroup) (domain.SponsorGroup, error) {
	created, err := s.repo.CreateSponsorGroup(ctx, sp)
	if err != nil {
		return domain.SponsorGroup{}, fmt.Errorf("s.repo.CreateSponsorGroup -> %w", err)
	}

	return created, nil
}

// ListSponsorGroups returns all groups, or only those of one region
// when region is non-empty.
func (s *PersonService) ListSponsorGroups(ctx context.Context, region string) ([]domain.SponsorGroup, error) {
	groups, err := s.repo.FindSponsorGroups(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSponsorGroups -> %w", err)
	}

	return groups, nil
}

// CreatePerson registers a natural person under an existing sponsor
// group.
func (s *PersonService) CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	if _, err := s.repo.FindSponsorGroupByID(ctx, person.SponsorGroupID); err != nil {
		return domain.Person{}, err
	}

	created, err := s.repo.CreatePerson(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.CreatePerson -> %w", err)
	}

	return created, nil
}

// ListPersons returns every person, or only those without a
// membership when nonMembersOnly is set. The filtered form is what
// guest pickers use.
func (s *PersonService) ListPersons(ctx context.Context, nonMembersOnly bool) ([]domain.Person, error) {
	persons, err := s.repo.FindPersons(ctx, nonMembersOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPersons -> %w", err)
	}

	return persons, nil
}

// CreateMember affiliates an existing person. A person holds at most
// one membership.
func (s *PersonService) CreateMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	if _, err := s.repo.FindPersonByID(ctx, member.PersonID); err != nil {
		return domain.Member{}, err
	}

	created, err := s.repo.CreateMember(ctx, member)
	if err != nil {
		return domain.Member{}, err
	}

	return created, nil
}

func (s *PersonService) GetMemberByID(ctx context.Context, id uint) (domain.Member, error) {
	member, err := s.repo.FindMemberByID(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}

	return member, nil
}

func (s *PersonService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindMembers -> %w", err)
	}

	return members, nil
}
