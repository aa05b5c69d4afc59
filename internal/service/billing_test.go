package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
	"github.com/clubtrack/club-api/internal/service"
)

type fakePresenceRepo struct {
	presences map[uint]domain.Presence
	guests    map[uint]int // keyed by member ID
	billables map[uint][]domain.Billable
}

func (f *fakePresenceRepo) FindByID(_ context.Context, id uint) (domain.Presence, error) {
	presence, ok := f.presences[id]
	if !ok {
		return domain.Presence{}, repository.ErrPresenceNotFound
	}

	return presence, nil
}

func (f *fakePresenceRepo) CountGuestsBrought(_ context.Context, memberID, _ uint) (int, error) {
	return f.guests[memberID], nil
}

func (f *fakePresenceRepo) BillablesByActivity(_ context.Context, activityID uint) ([]domain.Billable, error) {
	return f.billables[activityID], nil
}

type fakeActivityRepo struct {
	activities map[uint]domain.Activity
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uint) (domain.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}

	return activity, nil
}

type fakePolicyRepo struct {
	policy domain.DiscountPolicy
}

func (f *fakePolicyRepo) FindOrZero(_ context.Context) (domain.DiscountPolicy, error) {
	return f.policy, nil
}

// fakePaymentRepo reproduces the serialized check-then-append the
// storage layer guarantees with its row lock.
type fakePaymentRepo struct {
	mu sync.Mutex

	discountedPrice float64
	discountApplied bool
	payments        []float64
}

func (f *fakePaymentRepo) RecordAuthorized(_ context.Context, presenceID uint, amount float64) (domain.Payment, domain.DiscountInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	paid := 0.0
	for _, p := range f.payments {
		paid += p
	}

	remaining := f.discountedPrice - paid
	if amount > remaining {
		return domain.Payment{}, domain.DiscountInfo{}, &service.ExceedsBalanceError{
			Remaining:       remaining,
			DiscountApplied: f.discountApplied,
		}
	}

	f.payments = append(f.payments, amount)

	return domain.Payment{
		ID:         uint(len(f.payments)),
		PresenceID: presenceID,
		Amount:     amount,
		Date:       time.Now(),
	}, domain.DiscountInfo{DiscountedPrice: f.discountedPrice}, nil
}

func (f *fakePaymentRepo) SumForPresence(_ context.Context, _ uint) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	paid := 0.0
	for _, p := range f.payments {
		paid += p
	}

	return paid, nil
}

func newBillingFixture(policy domain.DiscountPolicy, guestsBrought int, paid []float64, discounted float64) *service.BillingService {
	presences := &fakePresenceRepo{
		presences: map[uint]domain.Presence{
			1: {
				ID:         1,
				ActivityID: 10,
				Attendee:   domain.Attendee{Kind: domain.AttendeeMember, MemberID: 7},
			},
		},
		guests: map[uint]int{7: guestsBrought},
	}
	activities := &fakeActivityRepo{
		activities: map[uint]domain.Activity{
			10: {ID: 10, Price: 100},
		},
	}
	payments := &fakePaymentRepo{
		discountedPrice: discounted,
		payments:        paid,
	}

	return service.NewBillingService(presences, payments, &fakePolicyRepo{policy: policy}, activities)
}

func TestBillingService_BalanceFor(t *testing.T) {
	policy := domain.DiscountPolicy{DiscountRate: 0.2, GuestThreshold: 3}
	svc := newBillingFixture(policy, 3, []float64{30}, 80)

	balance, err := svc.BalanceFor(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 100.0, balance.BasePrice)
	assert.Equal(t, 80.0, balance.DiscountedPrice)
	assert.Equal(t, 30.0, balance.TotalPaid)
	assert.Equal(t, 50.0, balance.Remaining)
	assert.True(t, balance.Discount.HasDiscount)
}

func TestBillingService_BalanceFor_Idempotent(t *testing.T) {
	policy := domain.DiscountPolicy{DiscountRate: 0.2, GuestThreshold: 3}
	svc := newBillingFixture(policy, 2, nil, 100)

	first, err := svc.BalanceFor(context.Background(), 1)
	require.NoError(t, err)

	// Reads do not write; the second read must match the first.
	second, err := svc.BalanceFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBillingService_BalanceFor_PresenceNotFound(t *testing.T) {
	svc := newBillingFixture(domain.DiscountPolicy{}, 0, nil, 100)

	_, err := svc.BalanceFor(context.Background(), 999)

	assert.ErrorIs(t, err, service.ErrPresenceNotFound)
}

func TestBillingService_AuthorizePayment_RejectsNonPositive(t *testing.T) {
	svc := newBillingFixture(domain.DiscountPolicy{}, 0, nil, 100)

	_, _, err := svc.AuthorizePayment(context.Background(), 1, 0)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)

	_, _, err = svc.AuthorizePayment(context.Background(), 1, -5)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)
}

func TestBillingService_AuthorizePayment_SettleThenReject(t *testing.T) {
	policy := domain.DiscountPolicy{DiscountRate: 0.2, GuestThreshold: 3}
	svc := newBillingFixture(policy, 3, nil, 80)

	// Settle the discounted price in full.
	payment, _, err := svc.AuthorizePayment(context.Background(), 1, 80)
	require.NoError(t, err)
	assert.Equal(t, 80.0, payment.Amount)

	balance, err := svc.BalanceFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Remaining)

	// Any further payment must bounce with the zero ceiling.
	_, _, err = svc.AuthorizePayment(context.Background(), 1, 0.01)
	var exceedsErr *service.ExceedsBalanceError
	require.ErrorAs(t, err, &exceedsErr)
	assert.Equal(t, 0.0, exceedsErr.Remaining)
}

func TestBillingService_AuthorizePayment_ConcurrentRace(t *testing.T) {
	policy := domain.DiscountPolicy{DiscountRate: 0.2, GuestThreshold: 3}
	svc := newBillingFixture(policy, 3, []float64{20}, 80)

	// Remaining is 60; two concurrent 50s must not both land.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = svc.AuthorizePayment(context.Background(), 1, 50)
		}()
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}

		var exceedsErr *service.ExceedsBalanceError
		require.ErrorAs(t, err, &exceedsErr)
		assert.Equal(t, 10.0, exceedsErr.Remaining)
	}
	assert.Equal(t, 1, accepted)

	paid, err := svc.BalanceFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 70.0, paid.TotalPaid)
}

func TestTotalExpected(t *testing.T) {
	policy := domain.DiscountPolicy{DiscountRate: 0.2, GuestThreshold: 3}

	billables := []domain.Billable{
		{IsMember: true, GuestsBrought: 3}, // 80
		{IsMember: true, GuestsBrought: 1}, // 100
		{IsMember: false},                  // 100
		{IsMember: false},                  // 100
	}

	assert.Equal(t, 380.0, service.TotalExpected(policy, 100, billables))
	assert.Equal(t, 0.0, service.TotalExpected(policy, 100, nil))
}
