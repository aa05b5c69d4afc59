package domain

import "time"

// Payment is one partial or full settlement of a presence. Payments are
// append-only; a presence's balance is always derived, never stored.
type Payment struct {
	ID         uint      `json:"id"`
	PresenceID uint      `json:"presence_id"`
	ActivityID uint      `json:"activity_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}
