package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrSponsorGroupNotFound = errors.New("sponsor group not found")
	ErrPersonNotFound       = errors.New("person not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrPersonAlreadyMember  = errors.New("person is already a member")
)

type SponsorGroup struct {
	ID          uint   `gorm:"primaryKey"`
	Region      string `gorm:"not null;index"`
	Description string `gorm:"not null"`
}

type Person struct {
	ID             uint      `gorm:"primaryKey"`
	FirstName      string    `gorm:"not null"`
	LastName       string    `gorm:"not null"`
	BirthDate      time.Time `gorm:"not null"`
	SponsorGroupID uint      `gorm:"not null;index"`

	SponsorGroup SponsorGroup `gorm:"foreignKey:SponsorGroupID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is the is-a extension row: a person is a member iff a row
// referencing them exists here.
type Member struct {
	ID              uint      `gorm:"primaryKey"`
	PersonID        uint      `gorm:"uniqueIndex;not null"`
	AffiliationDate time.Time `gorm:"not null"`

	Person Person `gorm:"foreignKey:PersonID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PersonDAO struct {
	db *gorm.DB
}

func NewPersonDAO(db *gorm.DB) *PersonDAO {
	return &PersonDAO{
		db: db,
	}
}

func (d *PersonDAO) InsertSponsorGroup(ctx context.Context, sp SponsorGroup) (SponsorGroup, error) {
	result := d.db.WithContext(ctx).Create(&sp)
	if result.Error != nil {
		return SponsorGroup{}, result.Error
	}

	return sp, nil
}

func (d *PersonDAO) FindSponsorGroups(ctx context.Context, region string) ([]SponsorGroup, error) {
	var sps []SponsorGroup

	query := d.db.WithContext(ctx)
	if region != "" {
		query = query.Where("region = ?", region)
	}

	result := query.Order("description").Find(&sps)
	if result.Error != nil {
		return nil, result.Error
	}

	return sps, nil
}

func (d *PersonDAO) FindSponsorGroupByID(ctx context.Context, id uint) (SponsorGroup, error) {
	var sp SponsorGroup

	result := d.db.WithContext(ctx).First(&sp, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SponsorGroup{}, ErrSponsorGroupNotFound
		}

		return SponsorGroup{}, result.Error
	}

	return sp, nil
}

func (d *PersonDAO) InsertPerson(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Create(&person)
	if result.Error != nil {
		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) FindPersonByID(ctx context.Context, id uint) (Person, error) {
	var person Person

	result := d.db.WithContext(ctx).First(&person, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}

		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) FindPersons(ctx context.Context) ([]Person, error) {
	var persons []Person

	result := d.db.WithContext(ctx).Order("last_name, first_name").Find(&persons)
	if result.Error != nil {
		return nil, result.Error
	}

	return persons, nil
}

// FindNonMemberPersons lists persons with no member extension row,
// i.e. the pool of potential guests.
func (d *PersonDAO) FindNonMemberPersons(ctx context.Context) ([]Person, error) {
	var persons []Person

	result := d.db.WithContext(ctx).
		Joins("LEFT JOIN members ON members.person_id = people.id").
		Where("members.id IS NULL").
		Order("people.last_name, people.first_name").
		Find(&persons)
	if result.Error != nil {
		return nil, result.Error
	}

	return persons, nil
}

func (d *PersonDAO) InsertMember(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Member{}, ErrPersonAlreadyMember
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *PersonDAO) FindMemberByID(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).Preload("Person").First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *PersonDAO) FindMembers(ctx context.Context) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).
		Preload("Person").
		Joins("JOIN people ON people.id = members.person_id").
		Order("people.last_name, people.first_name").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

// IsPersonMember answers the billing question "does this person attend
// on a member account" without loading the full extension row.
func (d *PersonDAO) IsPersonMember(ctx context.Context, personID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Member{}).
		Where("person_id = ?", personID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
