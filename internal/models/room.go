package models

import "time"

type Room struct {
	ID          string    `json:"id"`
	RoomNumber  string    `json:"roomNumber"`
	RoomType    string    `json:"roomType"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Amenities   []string  `json:"amenities"`
	Description string    `json:"description"`
	Discount    float64   `json:"discount"`
	Stars       int       `json:"stars"`
	PhotoKeys   []string  `json:"-"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
