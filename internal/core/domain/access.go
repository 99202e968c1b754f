package domain

// Role is the client-asserted admin role. It scopes what the UI shows; it
// is not an authentication mechanism.
type Role string

const (
	RoleOrgAdmin     Role = "org-admin"
	RoleSingleCampus Role = "single-campus"
	RoleMultiCampus  Role = "multi-campus"
)

// Session carries the active role and its assigned campus ids. It replaces
// the browser-local role storage of earlier versions: callers construct one
// per request and pass it explicitly.
type Session struct {
	Role      Role
	CampusIDs []string
}

// CanAccessCampus reports whether the session may see the given campus.
// Unknown roles see nothing.
func (s Session) CanAccessCampus(campusID string) bool {
	switch s.Role {
	case RoleOrgAdmin:
		return true
	case RoleSingleCampus, RoleMultiCampus:
		for _, id := range s.CampusIDs {
			if id == campusID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AccessibleCampaigns filters campaigns down to those the session may see.
// Org admins see everything; campus admins see campaigns whose assigned
// campuses intersect their own. An unrecognized role yields the empty set
// rather than falling open.
func AccessibleCampaigns(all []Campaign, s Session) []Campaign {
	switch s.Role {
	case RoleOrgAdmin:
		return all
	case RoleSingleCampus, RoleMultiCampus:
		out := make([]Campaign, 0, len(all))
		for _, c := range all {
			for _, campusID := range c.AssignedCampusIDs {
				if s.CanAccessCampus(campusID) {
					out = append(out, c)
					break
				}
			}
		}
		return out
	default:
		return nil
	}
}

// AccessibleCampuses returns the subset of a campaign's assigned campuses
// the session may see. It scopes per-campaign filter dropdowns and goal
// summation.
func AccessibleCampuses(c Campaign, s Session) []string {
	out := make([]string, 0, len(c.AssignedCampusIDs))
	for _, campusID := range c.AssignedCampusIDs {
		if s.CanAccessCampus(campusID) {
			out = append(out, campusID)
		}
	}
	return out
}

// DonorVisible reports whether a donor with activity at the given campuses
// is visible to the session: at least one associated campus must be
// accessible.
func DonorVisible(campusIDs []string, s Session) bool {
	for _, id := range campusIDs {
		if s.CanAccessCampus(id) {
			return true
		}
	}
	return false
}

// FilterByStatus keeps campaigns whose status is exactly one of the given
// values. With no values it returns the input unchanged.
func FilterByStatus(all []Campaign, statuses ...string) []Campaign {
	if len(statuses) == 0 {
		return all
	}
	out := make([]Campaign, 0, len(all))
	for _, c := range all {
		status := c.Status
		if status == "" {
			status = CampaignDraft
		}
		for _, s := range statuses {
			if status == s {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
