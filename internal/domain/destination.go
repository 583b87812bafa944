package domain

import "time"

// Destination is a static catalog entry. Rows are read-only at runtime and
// replaced wholesale by the seeder.
type Destination struct {
	ID          int64              `json:"id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Location    string             `json:"location"`
	Type        string             `json:"type"`
	Price       float64            `json:"price"`
	Duration    string             `json:"duration"`
	Budget      string             `json:"budget"`
	Image       string             `json:"image"`
	Description string             `json:"description"`
	Expenses    map[string]float64 `json:"expenses"`
	Tours       []Tour             `json:"tours"`
	CreatedAt   time.Time          `json:"created_at"`
}

type Tour struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}
