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
	ErrPresenceNotFound  = errors.New("presence not found")
	ErrDuplicatePresence = errors.New("person has already attended this activity")
)

// Presence is append-only. MemberID is the attending member for a
// member-self presence, or the bringing member when GuestPersonID is
// set. Exactly one billable person per row either way.
type Presence struct {
	ID            uint  `gorm:"primaryKey"`
	ActivityID    uint  `gorm:"not null;index"`
	MemberID      uint  `gorm:"not null;index"`
	GuestPersonID *uint `gorm:"index"`

	Activity Activity `gorm:"foreignKey:ActivityID"`
	Member   Member   `gorm:"foreignKey:MemberID"`

	CreatedAt time.Time
}

// PresenceListing is one row of the attendance listing with the
// billable person's identity already resolved.
type PresenceListing struct {
	PresenceID          uint      `gorm:"column:presence_id"`
	ActivityID          uint      `gorm:"column:activity_id"`
	ActivityDescription string    `gorm:"column:activity_description"`
	ActivityDate        time.Time `gorm:"column:activity_date"`
	ActivityPrice       float64   `gorm:"column:activity_price"`
	MemberID            uint      `gorm:"column:member_id"`
	GuestPersonID       *uint     `gorm:"column:guest_person_id"`
	FirstName           string    `gorm:"column:first_name"`
	LastName            string    `gorm:"column:last_name"`
}

// BillableRow carries what the discount engine needs for one presence.
type BillableRow struct {
	PresenceID    uint  `gorm:"column:presence_id"`
	MemberID      uint  `gorm:"column:member_id"`
	GuestPersonID *uint `gorm:"column:guest_person_id"`
	IsMember      bool  `gorm:"column:is_member"`
	GuestsBrought int   `gorm:"column:guests_brought"`
}

type PresenceDAO struct {
	db *gorm.DB
}

func NewPresenceDAO(db *gorm.DB) *PresenceDAO {
	return &PresenceDAO{
		db: db,
	}
}

func (d *PresenceDAO) Insert(ctx context.Context, presence Presence) (Presence, error) {
	result := d.db.WithContext(ctx).Create(&presence)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Presence{}, ErrDuplicatePresence
		}

		return Presence{}, result.Error
	}

	return presence, nil
}

func (d *PresenceDAO) FindByID(ctx context.Context, id uint) (Presence, error) {
	var presence Presence

	result := d.db.WithContext(ctx).First(&presence, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Presence{}, ErrPresenceNotFound
		}

		return Presence{}, result.Error
	}

	return presence, nil
}

func (d *PresenceDAO) FindAll(ctx context.Context) ([]PresenceListing, error) {
	var listings []PresenceListing

	result := d.db.WithContext(ctx).Raw(`
		SELECT pr.id              AS presence_id,
		       a.id               AS activity_id,
		       a.description      AS activity_description,
		       a.date             AS activity_date,
		       a.price            AS activity_price,
		       pr.member_id       AS member_id,
		       pr.guest_person_id AS guest_person_id,
		       p.first_name       AS first_name,
		       p.last_name        AS last_name
		FROM presences pr
		JOIN activities a ON a.id = pr.activity_id
		JOIN members m ON m.id = pr.member_id
		JOIN people p ON p.id = COALESCE(pr.guest_person_id, m.person_id)
		ORDER BY a.date DESC, pr.id`).Scan(&listings)
	if result.Error != nil {
		return nil, result.Error
	}

	return listings, nil
}

// CountGuestsBrought counts the guest presences one member created at
// one activity. This is the discount-eligibility counter; it is scoped
// to a single activity on purpose.
func (d *PresenceDAO) CountGuestsBrought(ctx context.Context, memberID, activityID uint) (int, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Presence{}).
		Where("member_id = ? AND activity_id = ? AND guest_person_id IS NOT NULL", memberID, activityID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// BillableRowsByActivity returns every presence of an activity with its
// guest count precomputed, so callers can quote each one independently.
func (d *PresenceDAO) BillableRowsByActivity(ctx context.Context, activityID uint) ([]BillableRow, error) {
	var rows []BillableRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT pr.id                          AS presence_id,
		       pr.member_id                   AS member_id,
		       pr.guest_person_id             AS guest_person_id,
		       (pr.guest_person_id IS NULL)   AS is_member,
		       CASE WHEN pr.guest_person_id IS NULL THEN
		            (SELECT COUNT(*) FROM presences g
		             WHERE g.member_id = pr.member_id
		               AND g.activity_id = pr.activity_id
		               AND g.guest_person_id IS NOT NULL)
		       ELSE 0 END                     AS guests_brought
		FROM presences pr
		WHERE pr.activity_id = ?`, activityID).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
