package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golasco/golasco/internal/domain"
)

// CustomerDashboard summarizes a customer's activity.
type CustomerDashboard struct {
	TotalLeads        int           `json:"total_leads"`
	CompletedBookings int           `json:"completed_bookings"`
	Leads             []domain.Lead `json:"leads"`
}

// AgentDashboard summarizes an agent's pipeline.
type AgentDashboard struct {
	TotalLeads      int           `json:"total_leads"`
	PropertiesCount int           `json:"properties_count"`
	Leads           []domain.Lead `json:"leads"`
}

// FranchiseDashboard summarizes a franchise's inventory and revenue.
type FranchiseDashboard struct {
	TotalProperties     int               `json:"total_properties"`
	AvailableProperties int               `json:"available_properties"`
	BookedProperties    int               `json:"booked_properties"`
	SoldProperties      int               `json:"sold_properties"`
	TotalBookingAmount  float64           `json:"total_booking_amount"`
	RecentLeads         []domain.Lead     `json:"recent_leads"`
	Properties          []domain.Property `json:"properties"`
}

// AdminDashboard summarizes platform-wide account state.
type AdminDashboard struct {
	TotalUsers   int               `json:"total_users"`
	PendingUsers []domain.Identity `json:"pending_users"`
}

// Dashboard bundles the role summaries; exactly one field is set,
// matching the segment that was fetched.
type Dashboard struct {
	Customer  *CustomerDashboard
	Agent     *AgentDashboard
	Franchise *FranchiseDashboard
	Admin     *AdminDashboard
}

// GetDashboard fetches the dashboard for a role's segment.
func (c *Client) GetDashboard(ctx context.Context, role domain.Role) (*Dashboard, error) {
	segment := role.DashboardSegment()
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/dashboard/"+segment, nil)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{}
	switch role {
	case domain.RoleCustomer:
		dash.Customer = &CustomerDashboard{}
		err = parseResponse(resp, dash.Customer)
	case domain.RoleAgent:
		dash.Agent = &AgentDashboard{}
		err = parseResponse(resp, dash.Agent)
	case domain.RoleFranchiseOwner:
		dash.Franchise = &FranchiseDashboard{}
		err = parseResponse(resp, dash.Franchise)
	case domain.RoleAdmin:
		dash.Admin = &AdminDashboard{}
		err = parseResponse(resp, dash.Admin)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("no dashboard segment for role %q", role)
	}
	if err != nil {
		return nil, err
	}

	return dash, nil
}
