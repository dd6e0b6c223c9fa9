package domain

// LeadType is the kind of customer request tracked against a property.
type LeadType string

// Valid lead types
const (
	LeadSiteVisit LeadType = "site_visit"
	LeadLoan      LeadType = "loan"
	LeadBooking   LeadType = "booking"
)

// LeadStatus is the backend's processing state for a lead.
type LeadStatus string

// Valid lead statuses
const (
	LeadNew        LeadStatus = "new"
	LeadInProgress LeadStatus = "in_progress"
	LeadCompleted  LeadStatus = "completed"
	LeadCancelled  LeadStatus = "cancelled"
)

// Lead is a customer-initiated request (site visit, loan inquiry, booking)
// tracked against a property.
type Lead struct {
	ID              string     `json:"id"`
	PropertyID      string     `json:"property_id"`
	Type            LeadType   `json:"type"`
	Status          LeadStatus `json:"status"`
	CustomerID      string     `json:"customer_id"`
	AssignedAgentID string     `json:"assigned_agent_id,omitempty"`
	FranchiseID     string     `json:"franchise_id,omitempty"`
	Amount          float64    `json:"amount,omitempty"`
	Message         string     `json:"message,omitempty"`
}
