package response

import (
	"math"
	"time"

	"github.com/clubtrack/club-api/internal/domain"
)

// round2 is the single place money leaves full precision. Everything
// upstream of the response boundary carries raw float64 sums.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type Discount struct {
	HasDiscount    bool    `json:"has_discount"`
	Rate           float64 `json:"rate"`
	GuestsBrought  int     `json:"guests_brought"`
	GuestsRequired int     `json:"guests_required"`
	DiscountAmount float64 `json:"discount_amount"`
}

func NewDiscount(info domain.DiscountInfo) Discount {
	return Discount{
		HasDiscount:    info.HasDiscount,
		Rate:           info.Rate,
		GuestsBrought:  info.GuestsBrought,
		GuestsRequired: info.GuestsRequired,
		DiscountAmount: round2(info.DiscountAmount),
	}
}

type Balance struct {
	PresenceID       uint     `json:"presence_id"`
	BasePrice        float64  `json:"base_price"`
	DiscountedPrice  float64  `json:"discounted_price"`
	TotalPaid        float64  `json:"total_paid"`
	RemainingBalance float64  `json:"remaining_balance"`
	Discount         Discount `json:"discount"`
}

func NewBalance(balance domain.Balance) Balance {
	return Balance{
		PresenceID:       balance.PresenceID,
		BasePrice:        round2(balance.BasePrice),
		DiscountedPrice:  round2(balance.DiscountedPrice),
		TotalPaid:        round2(balance.TotalPaid),
		RemainingBalance: round2(balance.Remaining),
		Discount:         NewDiscount(balance.Discount),
	}
}

type Payment struct {
	ID         uint      `json:"id"`
	PresenceID uint      `json:"presence_id"`
	ActivityID uint      `json:"activity_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Discount   Discount  `json:"discount"`
}

func NewPayment(payment domain.Payment, info domain.DiscountInfo) Payment {
	return Payment{
		ID:         payment.ID,
		PresenceID: payment.PresenceID,
		ActivityID: payment.ActivityID,
		Amount:     round2(payment.Amount),
		Date:       payment.Date,
		Discount:   NewDiscount(info),
	}
}

// PaymentRejected is the 409 body when a payment would overshoot the
// remaining balance.
type PaymentRejected struct {
	ErrorCode        string  `json:"error_code"`
	ErrorMsg         string  `json:"error_msg"`
	RemainingBalance float64 `json:"remaining_balance"`
	DiscountApplied  bool    `json:"discount_applied"`
}

func NewPaymentRejected(remaining float64, discountApplied bool) PaymentRejected {
	return PaymentRejected{
		ErrorCode:        "EXCEEDS_BALANCE",
		ErrorMsg:         "payment amount exceeds the remaining balance",
		RemainingBalance: round2(remaining),
		DiscountApplied:  discountApplied,
	}
}
