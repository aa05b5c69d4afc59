package repository

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

var (
	ErrSponsorGroupNotFound = dao.ErrSponsorGroupNotFound
	ErrPersonNotFound       = dao.ErrPersonNotFound
	ErrMemberNotFound       = dao.ErrMemberNotFound
	ErrPersonAlreadyMember  = dao.ErrPersonAlreadyMember
)

type PersonDAO interface {
	InsertSponsorGroup(ctx context.Context, sp dao.SponsorGroup) (dao.SponsorGroup, error)
	FindSponsorGroups(ctx context.Context, region string) ([]dao.SponsorGroup, error)
	FindSponsorGroupByID(ctx context.Context, id uint) (dao.SponsorGroup, error)
	InsertPerson(ctx context.Context, person dao.Person) (dao.Person, error)
	FindPersonByID(ctx context.Context, id uint) (dao.Person, error)
	FindPersons(ctx context.Context) ([]dao.Person, error)
	FindNonMemberPersons(ctx context.Context) ([]dao.Person, error)
	InsertMember(ctx context.Context, member dao.Member) (dao.Member, error)
	FindMemberByID(ctx context.Context, id uint) (dao.Member, error)
	FindMembers(ctx context.Context) ([]dao.Member, error)
	IsPersonMember(ctx context.Context, personID uint) (bool, error)
}

type PersonRepository struct {
	dao PersonDAO
}

func NewPersonRepository(dao PersonDAO) *PersonRepository {
	return &PersonRepository{
		dao: dao,
	}
}

func (r *PersonRepository) spDaoToDomain(sp dao.SponsorGroup) domain.SponsorGroup {
	return domain.SponsorGroup{
		ID:          sp.ID,
		Region:      sp.Region,
		Description: sp.Description,
	}
}

func (r *PersonRepository) personDaoToDomain(p dao.Person) domain.Person {
	return domain.Person{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		BirthDate:      p.BirthDate,
		SponsorGroupID: p.SponsorGroupID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *PersonRepository) memberDaoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:              m.ID,
		PersonID:        m.PersonID,
		AffiliationDate: m.AffiliationDate,
		FirstName:       m.Person.FirstName,
		LastName:        m.Person.LastName,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *PersonRepository) CreateSponsorGroup(ctx context.Context, sp domain.SponsorGroup) (domain.SponsorGroup, error) {
	created, err := r.dao.InsertSponsorGroup(ctx, dao.SponsorGroup{
		Region:      sp.Region,
		Description: sp.Description,
	})
	if err != nil {
		return domain.SponsorGroup{}, fmt.Errorf("r.dao.InsertSponsorGroup -> %w", err)
	}

	return r.spDaoToDomain(created), nil
}

func (r *PersonRepository) FindSponsorGroups(ctx context.Context, region string) ([]domain.SponsorGroup, error) {
	found, err := r.dao.FindSponsorGroups(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSponsorGroups -> %w", err)
	}

	sps := make([]domain.SponsorGroup, len(found))
	for i, sp := range found {
		sps[i] = r.spDaoToDomain(sp)
	}

	return sps, nil
}

func (r *PersonRepository) FindSponsorGroupByID(ctx context.Context, id uint) (domain.SponsorGroup, error) {
	found, err := r.dao.FindSponsorGroupByID(ctx, id)
	if err != nil {
		return domain.SponsorGroup{}, fmt.Errorf("r.dao.FindSponsorGroupByID -> %w", err)
	}

	return r.spDaoToDomain(found), nil
}

func (r *PersonRepository) CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	created, err := r.dao.InsertPerson(ctx, dao.Person{
		FirstName:      person.FirstName,
		LastName:       person.LastName,
		BirthDate:      person.BirthDate,
		SponsorGroupID: person.SponsorGroupID,
	})
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.InsertPerson -> %w", err)
	}

	return r.personDaoToDomain(created), nil
}

func (r *PersonRepository) FindPersonByID(ctx context.Context, id uint) (domain.Person, error) {
	found, err := r.dao.FindPersonByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindPersonByID -> %w", err)
	}

	return r.personDaoToDomain(found), nil
}

func (r *PersonRepository) FindPersons(ctx context.Context, nonMembersOnly bool) ([]domain.Person, error) {
	var found []dao.Person
	var err error

	if nonMembersOnly {
		found, err = r.dao.FindNonMemberPersons(ctx)
	} else {
		found, err = r.dao.FindPersons(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPersons -> %w", err)
	}

	persons := make([]domain.Person, len(found))
	for i, p := range found {
		persons[i] = r.personDaoToDomain(p)
	}

	return persons, nil
}

func (r *PersonRepository) CreateMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.InsertMember(ctx, dao.Member{
		PersonID:        member.PersonID,
		AffiliationDate: member.AffiliationDate,
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.InsertMember -> %w", err)
	}

	return r.memberDaoToDomain(created), nil
}

func (r *PersonRepository) FindMemberByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindMemberByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindMemberByID -> %w", err)
	}

	return r.memberDaoToDomain(found), nil
}

func (r *PersonRepository) FindMembers(ctx context.Context) ([]domain.Member, error) {
	found, err := r.dao.FindMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindMembers -> %w", err)
	}

	members := make([]domain.Member, len(found))
	for i, m := range found {
		members[i] = r.memberDaoToDomain(m)
	}

	return members, nil
}

func (r *PersonRepository) IsPersonMember(ctx context.Context, personID uint) (bool, error) {
	isMember, err := r.dao.IsPersonMember(ctx, personID)
	if err != nil {
		return false, fmt.Errorf("r.dao.IsPersonMember -> %w", err)
	}

	return isMember, nil
}
