package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

var ErrPolicyNotFound = dao.ErrPolicyNotFound

type PolicyDAO interface {
	Find(ctx context.Context) (dao.DiscountPolicy, error)
	Update(ctx context.Context, discountRate float64, guestThreshold int) (dao.DiscountPolicy, error)
}

type PolicyRepository struct {
	dao PolicyDAO
}

func NewPolicyRepository(dao PolicyDAO) *PolicyRepository {
	return &PolicyRepository{
		dao: dao,
	}
}

func (r *PolicyRepository) daoToDomain(p dao.DiscountPolicy) domain.DiscountPolicy {
	return domain.DiscountPolicy{
		MinimumPrice:   p.MinimumPrice,
		MaximumPrice:   p.MaximumPrice,
		DiscountRate:   p.DiscountRate,
		GuestThreshold: p.GuestThreshold,
	}
}

// Find returns the policy singleton. ErrPolicyNotFound passes through
// so callers can distinguish "missing" from storage failures.
func (r *PolicyRepository) Find(ctx context.Context) (domain.DiscountPolicy, error) {
	found, err := r.dao.Find(ctx)
	if err != nil {
		if errors.Is(err, dao.ErrPolicyNotFound) {
			return domain.DiscountPolicy{}, ErrPolicyNotFound
		}

		return domain.DiscountPolicy{}, fmt.Errorf("r.dao.Find -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindOrZero is the billing read: a missing policy row degrades to the
// zero policy, under which no discount ever applies.
func (r *PolicyRepository) FindOrZero(ctx context.Context) (domain.DiscountPolicy, error) {
	policy, err := r.Find(ctx)
	if err != nil {
		if errors.Is(err, ErrPolicyNotFound) {
			return domain.DiscountPolicy{}, nil
		}

		return domain.DiscountPolicy{}, err
	}

	return policy, nil
}

func (r *PolicyRepository) Update(ctx context.Context, discountRate float64, guestThreshold int) (domain.DiscountPolicy, error) {
	updated, err := r.dao.Update(ctx, discountRate, guestThreshold)
	if err != nil {
		if errors.Is(err, dao.ErrPolicyNotFound) {
			return domain.DiscountPolicy{}, ErrPolicyNotFound
		}

		return domain.DiscountPolicy{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}
