package models

import "time"

type UserRole string

const (
	UserRoleResident UserRole = "resident"
	UserRoleStaff    UserRole = "staff"
	UserRoleAdmin    UserRole = "admin"
)

// ResidentStatus tracks whether a resident currently holds a paid booking.
type ResidentStatus string

const (
	ResidentStatusActive   ResidentStatus = "active"
	ResidentStatusInactive ResidentStatus = "inactive"
	ResidentStatusUnknown  ResidentStatus = "unknown"
)

type EmergencyContact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     []byte
	PhoneNumber      string
	Role             UserRole
	ResidentStatus   ResidentStatus
	EmergencyContact EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
