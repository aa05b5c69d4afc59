package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPolicyNotFound = errors.New("discount policy not found")

// DiscountPolicy is a singleton row. Billing reads it fresh on every
// computation so administrative changes apply immediately, including to
// balances of already-recorded presences.
type DiscountPolicy struct {
	ID             uint    `gorm:"primaryKey"`
	MinimumPrice   float64 `gorm:"not null"`
	MaximumPrice   float64 `gorm:"not null"`
	DiscountRate   float64 `gorm:"not null"`
	GuestThreshold int     `gorm:"not null"`

	UpdatedAt time.Time
}

type PolicyDAO struct {
	db *gorm.DB
}

func NewPolicyDAO(db *gorm.DB) *PolicyDAO {
	return &PolicyDAO{
		db: db,
	}
}

func (d *PolicyDAO) Find(ctx context.Context) (DiscountPolicy, error) {
	var policy DiscountPolicy

	result := d.db.WithContext(ctx).First(&policy)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DiscountPolicy{}, ErrPolicyNotFound
		}

		return DiscountPolicy{}, result.Error
	}

	return policy, nil
}

// Update replaces rate and threshold in one statement so the pair can
// never be observed half-updated.
func (d *PolicyDAO) Update(ctx context.Context, discountRate float64, guestThreshold int) (DiscountPolicy, error) {
	var policy DiscountPolicy

	// The table holds a single row, so the update runs unconditioned
	// and RETURNING hands back the full row in the same round trip.
	result := d.db.WithContext(ctx).
		Model(&policy).
		Clauses(clause.Returning{}).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Updates(map[string]interface{}{
			"discount_rate":   discountRate,
			"guest_threshold": guestThreshold,
		})
	if result.Error != nil {
		return DiscountPolicy{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DiscountPolicy{}, ErrPolicyNotFound
	}

	return policy, nil
}
