package models

import "time"

type Expense struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes"`
	SpentAt   time.Time `json:"spentAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryTotal is a pre-aggregated amount per category over a date range,
// used by both expense and revenue reporting.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
