package repository

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	FindAll(ctx context.Context) ([]dao.Activity, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Description: a.Description,
		Date:        a.Date,
		Region:      a.Region,
		Priority:    a.Priority,
		Price:       a.Price,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, dao.Activity{
		Description: activity.Description,
		Date:        activity.Date,
		Region:      activity.Region,
		Priority:    activity.Priority,
		Price:       activity.Price,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	activities := make([]domain.Activity, len(found))
	for i, a := range found {
		activities[i] = r.daoToDomain(a)
	}

	return activities, nil
}
