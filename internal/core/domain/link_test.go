package domain

import "testing"

func TestValidRecordID(t *testing.T) {
	valid := []string{
		"reccampaign000001",
		"rec1234567890abcde",
		"recABCDEFGHIJKLMN",
	}
	for _, id := range valid {
		if !ValidRecordID(id) {
			t.Errorf("ValidRecordID(%q) = false", id)
		}
	}

	// wrong lengths, bad characters, a damaged prefix, stray whitespace
	// and a multiline smuggle
	invalid := []string{
		"",
		"rec",
		"reccampaign00001",
		"rec1234567890abcdef",
		"reccampaign-00001",
		"Reccampaign000001",
		"xrecampaign000001",
		"reccampaign000001 ",
		"reccampaign000001\nrecother",
	}
	for _, id := range invalid {
		if ValidRecordID(id) {
			t.Errorf("ValidRecordID(%q) = true", id)
		}
	}
}

func TestPledgeLink(t *testing.T) {
	got := PledgeLink("http://give.example.com", "reccampaign000001", "reccampus00000001")
	want := "http://give.example.com/pledge?campaign=reccampaign000001&campus=reccampus00000001"
	if got != want {
		t.Fatalf("PledgeLink = %q, want %q", got, want)
	}

	got = PledgeLink("http://give.example.com", "reccampaign000001", "")
	want = "http://give.example.com/pledge?campaign=reccampaign000001"
	if got != want {
		t.Fatalf("campus-less PledgeLink = %q, want %q", got, want)
	}
}

func TestGivingLink(t *testing.T) {
	got := GivingLink("http://give.example.com", "reccampaign000001", "reccampus00000001", "reclisting0000001")
	want := "http://give.example.com/give?campaign=reccampaign000001&campus=reccampus00000001&listing=reclisting0000001"
	if got != want {
		t.Fatalf("GivingLink = %q, want %q", got, want)
	}

	got = GivingLink("http://give.example.com", "reccampaign000001", "", "reclisting0000001")
	want = "http://give.example.com/give?campaign=reccampaign000001&listing=reclisting0000001"
	if got != want {
		t.Fatalf("org GivingLink = %q, want %q", got, want)
	}
}
