package service

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
)

var (
	ErrPresenceNotFound = repository.ErrPresenceNotFound
	ErrInvalidAmount    = repository.ErrInvalidAmount
)

// ExceedsBalanceError is re-exported so handlers can surface the
// remaining ceiling without reaching into storage packages.
type ExceedsBalanceError = repository.ExceedsBalanceError

type BillingPresenceRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Presence, error)
	CountGuestsBrought(ctx context.Context, memberID, activityID uint) (int, error)
	BillablesByActivity(ctx context.Context, activityID uint) ([]domain.Billable, error)
}

type BillingPaymentRepository interface {
	RecordAuthorized(ctx context.Context, presenceID uint, amount float64) (domain.Payment, domain.DiscountInfo, error)
	SumForPresence(ctx context.Context, presenceID uint) (float64, error)
}

type BillingPolicyRepository interface {
	FindOrZero(ctx context.Context) (domain.DiscountPolicy, error)
}

type BillingActivityRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
}

// BillingService derives balances and authorizes payments. Balances
// are never stored: every read recomputes from the live policy, the
// attendance log and the payment history, so policy changes apply
// retroactively to all open balances.
type BillingService struct {
	presences  BillingPresenceRepository
	payments   BillingPaymentRepository
	policies   BillingPolicyRepository
	activities BillingActivityRepository
}

func NewBillingService(
	presences BillingPresenceRepository,
	payments BillingPaymentRepository,
	policies BillingPolicyRepository,
	activities BillingActivityRepository,
) *BillingService {
	return &BillingService{
		presences:  presences,
		payments:   payments,
		policies:   policies,
		activities: activities,
	}
}

// QuoteForPresence runs the discount engine for one presence against
// the policy as it stands right now.
func (s *BillingService) QuoteForPresence(ctx context.Context, presence domain.Presence) (domain.DiscountInfo, error) {
	activity, err := s.activities.FindByID(ctx, presence.ActivityID)
	if err != nil {
		return domain.DiscountInfo{}, fmt.Errorf("s.activities.FindByID -> %w", err)
	}

	policy, err := s.policies.FindOrZero(ctx)
	if err != nil {
		return domain.DiscountInfo{}, fmt.Errorf("s.policies.FindOrZero -> %w", err)
	}

	guestsBrought := 0
	if presence.Attendee.IsMember() {
		guestsBrought, err = s.presences.CountGuestsBrought(ctx, presence.Attendee.MemberID, presence.ActivityID)
		if err != nil {
			return domain.DiscountInfo{}, fmt.Errorf("s.presences.CountGuestsBrought -> %w", err)
		}
	}

	return policy.Quote(activity.Price, presence.Attendee.IsMember(), guestsBrought), nil
}

// BalanceFor computes the derived balance of one presence. Remaining
// may come out negative and is returned as is.
func (s *BillingService) BalanceFor(ctx context.Context, presenceID uint) (domain.Balance, error) {
	presence, err := s.presences.FindByID(ctx, presenceID)
	if err != nil {
		return domain.Balance{}, err
	}

	info, err := s.QuoteForPresence(ctx, presence)
	if err != nil {
		return domain.Balance{}, err
	}

	totalPaid, err := s.payments.SumForPresence(ctx, presenceID)
	if err != nil {
		return domain.Balance{}, fmt.Errorf("s.payments.SumForPresence -> %w", err)
	}

	return domain.Balance{
		PresenceID:      presenceID,
		BasePrice:       info.BasePrice,
		DiscountedPrice: info.DiscountedPrice,
		TotalPaid:       totalPaid,
		Remaining:       info.DiscountedPrice - totalPaid,
		Discount:        info,
	}, nil
}

// AuthorizePayment validates and appends one payment. The balance
// check and the append are serialized per presence at the storage
// layer, so concurrent attempts cannot jointly overpay; the loser gets
// an ExceedsBalanceError carrying the remaining ceiling.
func (s *BillingService) AuthorizePayment(ctx context.Context, presenceID uint, amount float64) (domain.Payment, domain.DiscountInfo, error) {
	if amount <= 0 {
		return domain.Payment{}, domain.DiscountInfo{}, ErrInvalidAmount
	}

	return s.payments.RecordAuthorized(ctx, presenceID, amount)
}

// TotalExpected sums the discounted price of a batch of presences at
// one base price. Each presence is quoted independently; eligibility
// is never pooled across activities or payers. The sum keeps full
// precision; rounding belongs to the response boundary.
func TotalExpected(policy domain.DiscountPolicy, basePrice float64, billables []domain.Billable) float64 {
	total := 0.0
	for _, b := range billables {
		total += policy.Quote(basePrice, b.IsMember, b.GuestsBrought).DiscountedPrice
	}

	return total
}
