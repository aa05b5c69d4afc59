package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubtrack/club-api/internal/domain"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// ExceedsBalanceError carries the ceiling the payer is allowed to see.
type ExceedsBalanceError struct {
	Remaining       float64
	DiscountApplied bool
}

func (e *ExceedsBalanceError) Error() string {
	return fmt.Sprintf("payment exceeds remaining balance of %v", e.Remaining)
}

// Payment is append-only and always bound to one presence and its
// parent activity.
type Payment struct {
	ID         uint      `gorm:"primaryKey"`
	PresenceID uint      `gorm:"not null;index"`
	ActivityID uint      `gorm:"not null;index"`
	Amount     float64   `gorm:"not null"`
	Date       time.Time `gorm:"not null"`

	Presence Presence `gorm:"foreignKey:PresenceID"`

	CreatedAt time.Time
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

// InsertAuthorized checks the remaining balance and appends the payment
// inside one transaction, holding a row lock on the presence. Two
// concurrent authorizations against the same presence therefore
// serialize, and the sum of payments can never exceed the discounted
// price. The policy, guest count and payment sum are all re-read under
// the lock.
func (d *PaymentDAO) InsertAuthorized(ctx context.Context, presenceID uint, amount float64) (Payment, domain.DiscountInfo, error) {
	if amount <= 0 {
		return Payment{}, domain.DiscountInfo{}, ErrInvalidAmount
	}

	var payment Payment
	var info domain.DiscountInfo

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var presence Presence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&presence, presenceID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPresenceNotFound
			}

			return err
		}

		var activity Activity
		if err = tx.First(&activity, presence.ActivityID).Error; err != nil {
			return err
		}

		// Missing policy row means no discount ever applies.
		var policy DiscountPolicy
		err = tx.First(&policy).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		guestsBrought := 0
		if presence.GuestPersonID == nil {
			var count int64
			err = tx.Model(&Presence{}).
				Where("member_id = ? AND activity_id = ? AND guest_person_id IS NOT NULL",
					presence.MemberID, presence.ActivityID).
				Count(&count).Error
			if err != nil {
				return err
			}
			guestsBrought = int(count)
		}

		enginePolicy := domain.DiscountPolicy{
			DiscountRate:   policy.DiscountRate,
			GuestThreshold: policy.GuestThreshold,
		}
		info = enginePolicy.Quote(activity.Price, presence.GuestPersonID == nil, guestsBrought)

		var totalPaid float64
		err = tx.Model(&Payment{}).
			Where("presence_id = ?", presenceID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalPaid).Error
		if err != nil {
			return err
		}

		remaining := info.DiscountedPrice - totalPaid
		if amount > remaining {
			return &ExceedsBalanceError{
				Remaining:       remaining,
				DiscountApplied: info.HasDiscount,
			}
		}

		payment = Payment{
			PresenceID: presence.ID,
			ActivityID: presence.ActivityID,
			Amount:     amount,
			Date:       time.Now(),
		}

		return tx.Create(&payment).Error
	})
	if err != nil {
		return Payment{}, domain.DiscountInfo{}, err
	}

	return payment, info, nil
}

func (d *PaymentDAO) SumForPresence(ctx context.Context, presenceID uint) (float64, error) {
	var totalPaid float64

	result := d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("presence_id = ?", presenceID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalPaid)
	if result.Error != nil {
		return 0, result.Error
	}

	return totalPaid, nil
}
