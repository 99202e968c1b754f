package domain

import (
	"fmt"
	"net/url"
	"regexp"
)

// Record ids are opaque store-assigned tokens: a fixed "rec" prefix
// followed by 14-15 alphanumerics, 17-18 characters in total.
var recordIDPattern = regexp.MustCompile(`^rec[a-zA-Z0-9]{14,15}$`)

// ValidRecordID reports whether id looks like a store-assigned record id.
// Donor-facing pages validate link parameters with this before any fetch.
func ValidRecordID(id string) bool {
	return recordIDPattern.MatchString(id)
}

// PledgeLink builds a donor-facing pledge URL. With an empty campusID the
// page shows an in-page campus picker instead.
func PledgeLink(baseURL, campaignID, campusID string) string {
	if campusID == "" {
		return fmt.Sprintf("%s/pledge?campaign=%s", baseURL, url.QueryEscape(campaignID))
	}
	return fmt.Sprintf("%s/pledge?campaign=%s&campus=%s", baseURL, url.QueryEscape(campaignID), url.QueryEscape(campusID))
}

// GivingLink builds a donor-facing giving URL. Giving links always carry a
// listing; campusID may be empty for org-level giving.
func GivingLink(baseURL, campaignID, campusID, listingID string) string {
	if campusID == "" {
		return fmt.Sprintf("%s/give?campaign=%s&listing=%s", baseURL, url.QueryEscape(campaignID), url.QueryEscape(listingID))
	}
	return fmt.Sprintf("%s/give?campaign=%s&campus=%s&listing=%s", baseURL, url.QueryEscape(campaignID), url.QueryEscape(campusID), url.QueryEscape(listingID))
}
