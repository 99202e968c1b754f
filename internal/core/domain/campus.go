package domain

// Record status values shared by campuses and listings.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Campus is a physical site of the organization. Campuses are administered
// outside this application and are read-only here apart from status
// filtering.
type Campus struct {
	ID      string
	Name    string
	Address string
	Status  string
}

// Listing types.
const (
	ListingTypeOrganization = "Organization"
	ListingTypeCampus       = "Campus"
)

// Listing is a giving method (payment destination) offered either
// org-wide or at specific campuses.
type Listing struct {
	ID        string
	Name      string
	Type      string
	Status    string
	CampusIDs []string // campuses the listing is available at
}

// AvailableAt reports whether the listing is offered at the given campus.
func (l Listing) AvailableAt(campusID string) bool {
	for _, id := range l.CampusIDs {
		if id == campusID {
			return true
		}
	}
	return false
}
