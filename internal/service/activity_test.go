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

type fakeActivityStore struct {
	created []domain.Activity
}

func (f *fakeActivityStore) Create(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	activity.ID = uint(len(f.created) + 1)
	f.created = append(f.created, activity)

	return activity, nil
}

func (f *fakeActivityStore) FindByID(_ context.Context, id uint) (domain.Activity, error) {
	for _, a := range f.created {
		if a.ID == id {
			return a, nil
		}
	}

	return domain.Activity{}, repository.ErrActivityNotFound
}

func (f *fakeActivityStore) FindAll(_ context.Context) ([]domain.Activity, error) {
	return f.created, nil
}

type fakeBandPolicyRepo struct {
	policy domain.DiscountPolicy
	err    error
}

func (f *fakeBandPolicyRepo) Find(_ context.Context) (domain.DiscountPolicy, error) {
	if f.err != nil {
		return domain.DiscountPolicy{}, f.err
	}

	return f.policy, nil
}

func validActivity() domain.Activity {
	return domain.Activity{
		Description: "Spring hike",
		Date:        time.Now().AddDate(0, 1, 0),
		Region:      "North",
		Priority:    5,
		Price:       100,
	}
}

func TestActivityService_Create(t *testing.T) {
	policy := domain.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500}
	svc := service.NewActivityService(&fakeActivityStore{}, &fakeBandPolicyRepo{policy: policy})

	created, err := svc.Create(context.Background(), validActivity())

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestActivityService_Create_RejectsPastDate(t *testing.T) {
	policy := domain.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500}
	svc := service.NewActivityService(&fakeActivityStore{}, &fakeBandPolicyRepo{policy: policy})

	activity := validActivity()
	activity.Date = time.Now().AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), activity)

	assert.ErrorIs(t, err, service.ErrActivityDateNotFuture)
}

func TestActivityService_Create_RejectsPriceOutOfBand(t *testing.T) {
	policy := domain.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500}
	svc := service.NewActivityService(&fakeActivityStore{}, &fakeBandPolicyRepo{policy: policy})

	tests := []struct {
		name  string
		price float64
	}{
		{name: "below minimum", price: 5},
		{name: "above maximum", price: 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := validActivity()
			activity.Price = tt.price

			_, err := svc.Create(context.Background(), activity)

			var bandErr *service.PriceOutOfBandError
			require.ErrorAs(t, err, &bandErr)
			assert.Equal(t, 10.0, bandErr.MinimumPrice)
			assert.Equal(t, 500.0, bandErr.MaximumPrice)
		})
	}
}

func TestActivityService_Create_AcceptsBandEdges(t *testing.T) {
	policy := domain.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500}
	svc := service.NewActivityService(&fakeActivityStore{}, &fakeBandPolicyRepo{policy: policy})

	for _, price := range []float64{10, 500} {
		activity := validActivity()
		activity.Price = price

		_, err := svc.Create(context.Background(), activity)
		assert.NoError(t, err)
	}
}

func TestActivityService_Create_MissingPolicyIsAnError(t *testing.T) {
	svc := service.NewActivityService(&fakeActivityStore{}, &fakeBandPolicyRepo{err: repository.ErrPolicyNotFound})

	_, err := svc.Create(context.Background(), validActivity())

	assert.ErrorIs(t, err, service.ErrPolicyNotFound)
}

func TestActivityService_Create_RejectsBadPriority(t *testing.T) {
	policy := domain.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500}
	svc := service.NewActivityService(&fakeActivityStore{}, &fakeBandPolicyRepo{policy: policy})

	for _, priority := range []int{0, 11} {
		activity := validActivity()
		activity.Priority = priority

		_, err := svc.Create(context.Background(), activity)
		assert.Error(t, err)
	}
}
