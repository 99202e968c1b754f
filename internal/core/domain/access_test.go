package domain

import "testing"

func TestCanAccessCampus(t *testing.T) {
	org := Session{Role: RoleOrgAdmin}
	single := Session{Role: RoleSingleCampus, CampusIDs: []string{"recnorth000000001"}}
	unknown := Session{Role: "superuser", CampusIDs: []string{"recnorth000000001"}}

	if !org.CanAccessCampus("recanything000001") {
		t.Fatalf("org admin denied a campus")
	}
	if !single.CanAccessCampus("recnorth000000001") {
		t.Fatalf("single-campus admin denied own campus")
	}
	if single.CanAccessCampus("recsouth000000001") {
		t.Fatalf("single-campus admin granted a foreign campus")
	}
	// fail closed: an unrecognized role sees nothing even with campuses listed
	if unknown.CanAccessCampus("recnorth000000001") {
		t.Fatalf("unknown role granted access")
	}
}

func TestAccessibleCampaigns(t *testing.T) {
	north := Campaign{ID: "c1", AssignedCampusIDs: []string{"recnorth000000001"}}
	south := Campaign{ID: "c2", AssignedCampusIDs: []string{"recsouth000000001"}}
	both := Campaign{ID: "c3", AssignedCampusIDs: []string{"recnorth000000001", "recsouth000000001"}}
	all := []Campaign{north, south, both}

	got := AccessibleCampaigns(all, Session{Role: RoleOrgAdmin})
	if len(got) != 3 {
		t.Fatalf("org admin sees %d campaigns, want 3", len(got))
	}

	got = AccessibleCampaigns(all, Session{Role: RoleMultiCampus, CampusIDs: []string{"recnorth000000001"}})
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Fatalf("north admin sees %+v, want c1 and c3", got)
	}

	if got = AccessibleCampaigns(all, Session{Role: "left-blank"}); got != nil {
		t.Fatalf("unknown role sees %+v, want nothing", got)
	}

	// filtering twice changes nothing
	sess := Session{Role: RoleMultiCampus, CampusIDs: []string{"recnorth000000001"}}
	once := AccessibleCampaigns(all, sess)
	twice := AccessibleCampaigns(once, sess)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
	}
}

func TestDonorVisible(t *testing.T) {
	sess := Session{Role: RoleSingleCampus, CampusIDs: []string{"recnorth000000001"}}
	if !DonorVisible([]string{"recsouth000000001", "recnorth000000001"}, sess) {
		t.Fatalf("donor with accessible activity hidden")
	}
	if DonorVisible([]string{"recsouth000000001"}, sess) {
		t.Fatalf("donor with no accessible activity shown")
	}
	if DonorVisible(nil, sess) {
		t.Fatalf("donor with no campus activity shown")
	}
}

func TestFilterByStatus(t *testing.T) {
	all := []Campaign{
		{ID: "c1", Status: CampaignPublished},
		{ID: "c2", Status: CampaignClosed},
		{ID: "c3"}, // absent status reads as Draft
	}
	got := FilterByStatus(all, CampaignPublished, CampaignDraft)
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Fatalf("got %+v, want c1 and c3", got)
	}
	if got = FilterByStatus(all); len(got) != 3 {
		t.Fatalf("no statuses should pass everything, got %d", len(got))
	}
}
