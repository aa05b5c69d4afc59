package service

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
)

type PolicyRepository interface {
	Find(ctx context.Context) (domain.DiscountPolicy, error)
	FindOrZero(ctx context.Context) (domain.DiscountPolicy, error)
	Update(ctx context.Context, rate float64, threshold int) (domain.DiscountPolicy, error)
}

// PolicyService manages the single club-wide discount policy. Updates
// replace both knobs in one step so no reader sees a half-applied
// policy.
type PolicyService struct {
	repo PolicyRepository
}

func NewPolicyService(repo PolicyRepository) *PolicyService {
	return &PolicyService{
		repo: repo,
	}
}

func (s *PolicyService) Get(ctx context.Context) (domain.DiscountPolicy, error) {
	policy, err := s.repo.Find(ctx)
	if err != nil {
		return domain.DiscountPolicy{}, err
	}

	return policy, nil
}

func (s *PolicyService) Update(ctx context.Context, rate float64, threshold int) (domain.DiscountPolicy, error) {
	updated, err := s.repo.Update(ctx, rate, threshold)
	if err != nil {
		return domain.DiscountPolicy{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
