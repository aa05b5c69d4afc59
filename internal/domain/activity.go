package domain

import "time"

const (
	MinActivityPriority = 1
	MaxActivityPriority = 10
)

type Activity struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Region      string    `json:"region"`
	Priority    int       `json:"priority"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
