package dao

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Rollup rows are read-only aggregates; the expected amounts are NOT
// computed here because discounts must go through the engine presence
// by presence. These queries only gather counts, prices and paid sums.

type ActivityRollup struct {
	ActivityID  uint      `gorm:"column:activity_id"`
	Description string    `gorm:"column:description"`
	Date        time.Time `gorm:"column:date"`
	Price       float64   `gorm:"column:price"`
	MemberCount int       `gorm:"column:member_count"`
	GuestCount  int       `gorm:"column:guest_count"`
	TotalPaid   float64   `gorm:"column:total_paid"`
}

type MemberOwnPresenceRow struct {
	ActivityID    uint    `gorm:"column:activity_id"`
	Price         float64 `gorm:"column:price"`
	GuestsBrought int     `gorm:"column:guests_brought"`
}

type GuestPresenceRow struct {
	ActivityID    uint    `gorm:"column:activity_id"`
	GuestPersonID uint    `gorm:"column:guest_person_id"`
	Price         float64 `gorm:"column:price"`
}

type SPActivityRollup struct {
	SponsorGroupID      uint      `gorm:"column:sponsor_group_id"`
	Region              string    `gorm:"column:region"`
	SPDescription       string    `gorm:"column:sp_description"`
	ActivityID          uint      `gorm:"column:activity_id"`
	ActivityDescription string    `gorm:"column:activity_description"`
	ActivityDate        time.Time `gorm:"column:activity_date"`
	ActivityPrice       float64   `gorm:"column:activity_price"`
	PersonCount         int       `gorm:"column:person_count"`
	TotalPaid           float64   `gorm:"column:total_paid"`
}

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

func (d *ReportDAO) ActivityRollups(ctx context.Context) ([]ActivityRollup, error) {
	var rollups []ActivityRollup

	result := d.db.WithContext(ctx).Raw(`
		WITH member_presences AS (
			SELECT activity_id, COUNT(DISTINCT member_id) AS member_count
			FROM presences
			WHERE guest_person_id IS NULL
			GROUP BY activity_id
		),
		guest_presences AS (
			SELECT activity_id, COUNT(DISTINCT guest_person_id) AS guest_count
			FROM presences
			WHERE guest_person_id IS NOT NULL
			GROUP BY activity_id
		),
		activity_payments AS (
			SELECT pr.activity_id, COALESCE(SUM(pay.amount), 0) AS total_paid
			FROM presences pr
			LEFT JOIN payments pay ON pay.presence_id = pr.id
			GROUP BY pr.activity_id
		)
		SELECT a.id                       AS activity_id,
		       a.description              AS description,
		       a.date                     AS date,
		       a.price                    AS price,
		       COALESCE(mp.member_count, 0) AS member_count,
		       COALESCE(gp.guest_count, 0)  AS guest_count,
		       COALESCE(ap.total_paid, 0)   AS total_paid
		FROM activities a
		LEFT JOIN member_presences mp ON mp.activity_id = a.id
		LEFT JOIN guest_presences gp ON gp.activity_id = a.id
		LEFT JOIN activity_payments ap ON ap.activity_id = a.id
		ORDER BY a.date DESC`).Scan(&rollups)
	if result.Error != nil {
		return nil, result.Error
	}

	return rollups, nil
}

// MemberOwnPresences lists a member's own attendances over a range of
// activity dates, each with its per-activity guest count so the
// discount can be quoted independently per activity.
func (d *ReportDAO) MemberOwnPresences(ctx context.Context, memberID uint, start, end time.Time) ([]MemberOwnPresenceRow, error) {
	var rows []MemberOwnPresenceRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT pr.activity_id AS activity_id,
		       a.price        AS price,
		       (SELECT COUNT(*) FROM presences g
		        WHERE g.member_id = pr.member_id
		          AND g.activity_id = pr.activity_id
		          AND g.guest_person_id IS NOT NULL) AS guests_brought
		FROM presences pr
		JOIN activities a ON a.id = pr.activity_id
		WHERE pr.member_id = ?
		  AND pr.guest_person_id IS NULL
		  AND a.date >= ? AND a.date < ?`, memberID, start, end).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ReportDAO) MemberOwnPayments(ctx context.Context, memberID uint, start, end time.Time) (float64, error) {
	var totalPaid float64

	result := d.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(pay.amount), 0)
		FROM payments pay
		JOIN presences pr ON pr.id = pay.presence_id
		JOIN activities a ON a.id = pr.activity_id
		WHERE pr.member_id = ?
		  AND pr.guest_person_id IS NULL
		  AND a.date >= ? AND a.date < ?`, memberID, start, end).Scan(&totalPaid)
	if result.Error != nil {
		return 0, result.Error
	}

	return totalPaid, nil
}

// GuestPresencesOfMember lists the guest attendances a member created
// in the range. Guests always owe the full activity price.
func (d *ReportDAO) GuestPresencesOfMember(ctx context.Context, memberID uint, start, end time.Time) ([]GuestPresenceRow, error) {
	var rows []GuestPresenceRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT pr.activity_id    AS activity_id,
		       pr.guest_person_id AS guest_person_id,
		       a.price           AS price
		FROM presences pr
		JOIN activities a ON a.id = pr.activity_id
		WHERE pr.member_id = ?
		  AND pr.guest_person_id IS NOT NULL
		  AND a.date >= ? AND a.date < ?`, memberID, start, end).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ReportDAO) GuestPaymentsOfMember(ctx context.Context, memberID uint, start, end time.Time) (float64, error) {
	var totalPaid float64

	result := d.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(pay.amount), 0)
		FROM payments pay
		JOIN presences pr ON pr.id = pay.presence_id
		JOIN activities a ON a.id = pr.activity_id
		WHERE pr.member_id = ?
		  AND pr.guest_person_id IS NOT NULL
		  AND a.date >= ? AND a.date < ?`, memberID, start, end).Scan(&totalPaid)
	if result.Error != nil {
		return 0, result.Error
	}

	return totalPaid, nil
}

// SPActivityRollups pairs every sponsor group with every activity, with
// attendance and payment aggregates for persons affiliated to that SP.
// Pairs with no attendance are kept so the report shows a full grid.
func (d *ReportDAO) SPActivityRollups(ctx context.Context, region string) ([]SPActivityRollup, error) {
	var rollups []SPActivityRollup

	query := `
		WITH sp_presences AS (
			SELECT p.sponsor_group_id, pr.activity_id, COUNT(DISTINCT p.id) AS person_count
			FROM presences pr
			JOIN members m ON m.id = pr.member_id
			JOIN people p ON p.id = COALESCE(pr.guest_person_id, m.person_id)
			GROUP BY p.sponsor_group_id, pr.activity_id
		),
		sp_payments AS (
			SELECT p.sponsor_group_id, pr.activity_id, COALESCE(SUM(pay.amount), 0) AS total_paid
			FROM payments pay
			JOIN presences pr ON pr.id = pay.presence_id
			JOIN members m ON m.id = pr.member_id
			JOIN people p ON p.id = COALESCE(pr.guest_person_id, m.person_id)
			GROUP BY p.sponsor_group_id, pr.activity_id
		)
		SELECT sp.id            AS sponsor_group_id,
		       sp.region        AS region,
		       sp.description   AS sp_description,
		       a.id             AS activity_id,
		       a.description    AS activity_description,
		       a.date           AS activity_date,
		       a.price          AS activity_price,
		       COALESCE(spp.person_count, 0) AS person_count,
		       COALESCE(spy.total_paid, 0)   AS total_paid
		FROM sponsor_groups sp
		CROSS JOIN activities a
		LEFT JOIN sp_presences spp ON spp.sponsor_group_id = sp.id AND spp.activity_id = a.id
		LEFT JOIN sp_payments spy ON spy.sponsor_group_id = sp.id AND spy.activity_id = a.id
		%s
		ORDER BY sp.description, a.date DESC`

	var result *gorm.DB
	if region != "" {
		result = d.db.WithContext(ctx).Raw(fmt.Sprintf(query, "WHERE sp.region = ?"), region).Scan(&rollups)
	} else {
		result = d.db.WithContext(ctx).Raw(fmt.Sprintf(query, "")).Scan(&rollups)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return rollups, nil
}

// SPActivityBillableRows returns the presences of one SP's persons at
// one activity, shaped for per-presence quoting.
func (d *ReportDAO) SPActivityBillableRows(ctx context.Context, sponsorGroupID, activityID uint) ([]BillableRow, error) {
	var rows []BillableRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT pr.id                        AS presence_id,
		       pr.member_id                 AS member_id,
		       pr.guest_person_id           AS guest_person_id,
		       (pr.guest_person_id IS NULL) AS is_member,
		       CASE WHEN pr.guest_person_id IS NULL THEN
		            (SELECT COUNT(*) FROM presences g
		             WHERE g.member_id = pr.member_id
		               AND g.activity_id = pr.activity_id
		               AND g.guest_person_id IS NOT NULL)
		       ELSE 0 END                   AS guests_brought
		FROM presences pr
		JOIN members m ON m.id = pr.member_id
		JOIN people p ON p.id = COALESCE(pr.guest_person_id, m.person_id)
		WHERE p.sponsor_group_id = ? AND pr.activity_id = ?`, sponsorGroupID, activityID).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
