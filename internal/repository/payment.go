package repository

import (
	"context"
	"fmt"

	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

var ErrInvalidAmount = dao.ErrInvalidAmount

// ExceedsBalanceError surfaces the remaining ceiling computed under the
// authorization lock.
type ExceedsBalanceError = dao.ExceedsBalanceError

type PaymentDAO interface {
	InsertAuthorized(ctx context.Context, presenceID uint, amount float64) (dao.Payment, domain.DiscountInfo, error)
	SumForPresence(ctx context.Context, presenceID uint) (float64, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:         p.ID,
		PresenceID: p.PresenceID,
		ActivityID: p.ActivityID,
		Amount:     p.Amount,
		Date:       p.Date,
		CreatedAt:  p.CreatedAt,
	}
}

// RecordAuthorized runs the serialized authorize-and-append. Callers
// get the appended payment plus the discount explanation used for the
// authorization decision.
func (r *PaymentRepository) RecordAuthorized(ctx context.Context, presenceID uint, amount float64) (domain.Payment, domain.DiscountInfo, error) {
	created, info, err := r.dao.InsertAuthorized(ctx, presenceID, amount)
	if err != nil {
		return domain.Payment{}, domain.DiscountInfo{}, err
	}

	return r.daoToDomain(created), info, nil
}

func (r *PaymentRepository) SumForPresence(ctx context.Context, presenceID uint) (float64, error) {
	totalPaid, err := r.dao.SumForPresence(ctx, presenceID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumForPresence -> %w", err)
	}

	return totalPaid, nil
}
