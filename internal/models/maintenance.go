package models

import "time"

type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAssigned RequestStatus = "assigned"
	RequestStatusResolved RequestStatus = "resolved"
)

type MaintenanceRequest struct {
	ID          string          `json:"id"`
	IssueType   string          `json:"issueType"`
	Description string          `json:"description"`
	Priority    RequestPriority `json:"priority"`
	RoomNumber  string          `json:"roomNumber"`
	ResidentID  string          `json:"residentId"`
	StaffID     *string         `json:"staffId,omitempty"`
	Status      RequestStatus   `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	ResolvedAt  *time.Time      `json:"resolvedAt,omitempty"`
}
