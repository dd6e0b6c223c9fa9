package domain

// PropertyStatus is the listing state of a property.
type PropertyStatus string

// Valid property statuses
const (
	PropertyAvailable PropertyStatus = "available"
	PropertyBooked    PropertyStatus = "booked"
	PropertySold      PropertyStatus = "sold"
)

// Property is a marketplace listing as served by the backend.
type Property struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	City            string         `json:"city"`
	Price           float64        `json:"price"`
	PropertyType    string         `json:"property_type"`
	Status          PropertyStatus `json:"status"`
	FranchiseID     string         `json:"franchise_id"`
	AssignedAgentID string         `json:"assigned_agent_id,omitempty"`
}

// BookingAmount returns the booking charge for the property: a fixed 10%
// fraction of the listed price.
func (p *Property) BookingAmount() float64 {
	return p.Price * 0.1
}
