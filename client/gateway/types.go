package gateway

import "hostelhub/client/state"

// Booking mirrors the server's booking payload.
type Booking struct {
	BookingID    string       `json:"bookingId"`
	RoomID       string       `json:"roomId"`
	RoomNumber   string       `json:"roomNumber"`
	CheckInDate  string       `json:"checkInDate"`
	CheckOutDate string       `json:"checkOutDate"`
	TotalPrice   float64      `json:"totalPrice"`
	Status       string       `json:"bookingStatus"`
	Paid         bool         `json:"paymentStatus"`
	Guests       state.Guests `json:"guests"`
}

type Room struct {
	ID          string   `json:"id"`
	RoomNumber  string   `json:"roomNumber"`
	RoomType    string   `json:"roomType"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Discount    float64  `json:"discount"`
	Stars       int      `json:"stars"`
	Available   bool     `json:"available"`
	PhotoURLs   []string `json:"photoUrls"`
}

type Order struct {
	OrderID  string  `json:"orderID"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type MaintenanceRequest struct {
	ID          string `json:"id"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	RoomNumber  string `json:"roomNumber"`
	Status      string `json:"status"`
}

type StaffMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Profile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	ResidentStatus string `json:"residentStatus"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
