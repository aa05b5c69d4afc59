package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository"
)

var (
	ErrActivityNotFound = repository.ErrActivityNotFound
	ErrPolicyNotFound   = repository.ErrPolicyNotFound
)

// ErrActivityDateNotFuture rejects activities scheduled in the past or
// at the current instant.
var ErrActivityDateNotFuture = fmt.Errorf("activity date must be in the future")

// PriceOutOfBandError reports the allowed band so callers can echo it.
type PriceOutOfBandError struct {
	Price        float64
	MinimumPrice float64
	MaximumPrice float64
}

func (e *PriceOutOfBandError) Error() string {
	return fmt.Sprintf("price %.2f is outside the allowed band [%.2f, %.2f]", e.Price, e.MinimumPrice, e.MaximumPrice)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
}

type ActivityPolicyRepository interface {
	Find(ctx context.Context) (domain.DiscountPolicy, error)
}

type ActivityService struct {
	repo     ActivityRepository
	policies ActivityPolicyRepository
}

func NewActivityService(repo ActivityRepository, policies ActivityPolicyRepository) *ActivityService {
	return &ActivityService{
		repo:     repo,
		policies: policies,
	}
}

// Create persists a new activity after checking the scheduling and
// pricing rules. The price band comes from the policy row; a missing
// row is a deployment fault, not an open band.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if !activity.Date.After(time.Now()) {
		return domain.Activity{}, ErrActivityDateNotFuture
	}

	if activity.Priority < domain.MinActivityPriority || activity.Priority > domain.MaxActivityPriority {
		return domain.Activity{}, fmt.Errorf("priority must be between %d and %d", domain.MinActivityPriority, domain.MaxActivityPriority)
	}

	policy, err := s.policies.Find(ctx)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.policies.Find -> %w", err)
	}

	if activity.Price < policy.MinimumPrice || activity.Price > policy.MaximumPrice {
		return domain.Activity{}, &PriceOutOfBandError{
			Price:        activity.Price,
			MinimumPrice: policy.MinimumPrice,
			MaximumPrice: policy.MaximumPrice,
		}
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) GetByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	return activity, nil
}

func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return activities, nil
}
