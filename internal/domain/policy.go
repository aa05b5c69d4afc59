package domain

// DiscountPolicy is the singleton billing configuration. The price band
// constrains activity creation; rate and threshold drive the volume
// discount for members who bring guests. The zero value means "no
// discount ever applies", which is also the behavior when the policy
// row is missing from the store.
type DiscountPolicy struct {
	MinimumPrice   float64 `json:"minimum_price"`
	MaximumPrice   float64 `json:"maximum_price"`
	DiscountRate   float64 `json:"discount_rate"`
	GuestThreshold int     `json:"guest_threshold"`
}

// DiscountInfo explains how a presence's price was computed, so callers
// can show the payer why the charged price differs from the posted one.
type DiscountInfo struct {
	HasDiscount     bool    `json:"has_discount"`
	IsMember        bool    `json:"is_member"`
	Rate            float64 `json:"rate"`
	GuestsBrought   int     `json:"guests_brought"`
	GuestsRequired  int     `json:"guests_required"`
	BasePrice       float64 `json:"base_price"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// Quote computes the price owed for one presence. Discounts apply only
// to members attending on their own account, and only when the member
// brought at least GuestThreshold guests to that same activity.
// The guest count is per activity, never cumulative across activities.
// A zero or negative base price passes through unchanged; it is
// validated at activity creation, not here.
func (p DiscountPolicy) Quote(basePrice float64, isMember bool, guestsBrought int) DiscountInfo {
	if !isMember {
		return DiscountInfo{
			BasePrice:       basePrice,
			DiscountedPrice: basePrice,
		}
	}

	hasDiscount := guestsBrought >= p.GuestThreshold && p.DiscountRate > 0

	discountAmount := 0.0
	if hasDiscount {
		discountAmount = basePrice * p.DiscountRate
	}

	return DiscountInfo{
		HasDiscount:     hasDiscount,
		IsMember:        true,
		Rate:            p.DiscountRate,
		GuestsBrought:   guestsBrought,
		GuestsRequired:  p.GuestThreshold,
		BasePrice:       basePrice,
		DiscountAmount:  discountAmount,
		DiscountedPrice: basePrice - discountAmount,
	}
}

// Balance is the derived financial state of one presence. Remaining may
// be negative; the calculator never clamps it.
type Balance struct {
	PresenceID      uint         `json:"presence_id"`
	BasePrice       float64      `json:"base_price"`
	DiscountedPrice float64      `json:"discounted_price"`
	TotalPaid       float64      `json:"total_paid"`
	Remaining       float64      `json:"remaining"`
	Discount        DiscountInfo `json:"discount_info"`
}
