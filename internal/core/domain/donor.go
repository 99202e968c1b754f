package domain

// Donor is a person on file. Donors are found-or-created by
// case-sensitive exact email match whenever a pledge or gift names
// someone not already known.
type Donor struct {
	ID           string
	Name         string
	Email        string
	HomeCampusID string
}
