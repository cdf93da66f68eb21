package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type CreateMaintenanceInput struct {
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	RoomNumber  string `json:"roomNumber"`
}

func (c *Client) CreateMaintenanceRequest(ctx context.Context, input CreateMaintenanceInput) (MaintenanceRequest, error) {
	var payload struct {
		Request MaintenanceRequest `json:"request"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/maintenance-request/create", input, &payload, true)
	if err != nil {
		return MaintenanceRequest{}, err
	}
	return payload.Request, nil
}

// StaffRequests lists the calling staff member's assigned queue.
func (c *Client) StaffRequests(ctx context.Context) ([]MaintenanceRequest, error) {
	var payload struct {
		Requests []MaintenanceRequest `json:"requests"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/maintenance-request/get-requests/staff", nil, &payload, true)
	if err != nil {
		return nil, err
	}
	return payload.Requests, nil
}

func (c *Client) ResolveRequest(ctx context.Context, requestID string) error {
	path := "/api/v1/maintenance-request/resolve/" + url.PathEscape(requestID)
	return c.do(ctx, http.MethodPatch, path, nil, nil, true)
}

func (c *Client) PendingRequests(ctx context.Context) ([]MaintenanceRequest, error) {
	var payload struct {
		Requests []MaintenanceRequest `json:"requests"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/maintenance-request/pending", nil, &payload, true)
	if err != nil {
		return nil, err
	}
	return payload.Requests, nil
}

type assignStaffRequest struct {
	StaffID string `json:"staffId"`
}

func (c *Client) AssignStaff(ctx context.Context, requestID, staffID string) error {
	path := fmt.Sprintf("/api/v1/maintenance-request/assign-staff/%s", url.PathEscape(requestID))
	return c.do(ctx, http.MethodPatch, path, assignStaffRequest{StaffID: staffID}, nil, true)
}

func (c *Client) AvailableStaff(ctx context.Context) ([]StaffMember, error) {
	var payload struct {
		Staff []StaffMember `json:"staff"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/staff/available", nil, &payload, true); err != nil {
		return nil, err
	}
	return payload.Staff, nil
}
