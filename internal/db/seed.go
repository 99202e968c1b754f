package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campuses, listings, a campaign with its fund and
// goals, people, pledges and gifts. Every row carries a fixed id, so
// running it twice is a no-op.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	campuses := []struct{ id, name, address string }{
		{"recseedcampus0001", "North Campus", "1 North Rd"},
		{"recseedcampus0002", "South Campus", "2 South Ave"},
		{"recseedcampus0003", "Downtown Campus", "3 Main St"},
	}
	for _, c := range campuses {
		_, err := db.Exec(ctx, `INSERT INTO campuses (id, name, address, status)
VALUES ($1,$2,$3,'Active') ON CONFLICT DO NOTHING`, c.id, c.name, c.address)
		if err != nil {
			return err
		}
	}

	listings := []struct{ id, name, typ string }{
		{"recseedlisting001", "General Fund", "Organization"},
		{"recseedlisting002", "North Building Fund", "Campus"},
		{"recseedlisting003", "South Building Fund", "Campus"},
	}
	for _, l := range listings {
		_, err := db.Exec(ctx, `INSERT INTO listings (id, name, type, status)
VALUES ($1,$2,$3,'Active') ON CONFLICT DO NOTHING`, l.id, l.name, l.typ)
		if err != nil {
			return err
		}
	}
	listingCampuses := [][2]string{
		{"recseedlisting002", "recseedcampus0001"},
		{"recseedlisting003", "recseedcampus0002"},
	}
	for _, lc := range listingCampuses {
		_, err := db.Exec(ctx, `INSERT INTO listing_campuses (listing_id, campus_id)
VALUES ($1,$2) ON CONFLICT DO NOTHING`, lc[0], lc[1])
		if err != nil {
			return err
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO funds (id, name, code, tax_deductible, thank_you_message, thank_you_animation)
VALUES ('recseedfund000001', 'Building Fund', 'BLD', true, 'Thank you for your generosity!', 'confetti')
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, name, description, financial_goal, start_date, end_date, status, scope, donation_destination, fund_id)
VALUES ('recseedcampaign01', 'New Building', 'Raise funds for the new building.', 100000,
        $1, $2, 'Published', 'Campus', 'Campus', 'recseedfund000001')
ON CONFLICT DO NOTHING`, start, end)
	if err != nil {
		return err
	}
	for _, campusID := range []string{"recseedcampus0001", "recseedcampus0002"} {
		_, err = db.Exec(ctx, `INSERT INTO campaign_campuses (campaign_id, campus_id)
VALUES ('recseedcampaign01', $1) ON CONFLICT DO NOTHING`, campusID)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campus_goals (campaign_id, campus_id, goal)
VALUES ('recseedcampaign01', $1, 50000) ON CONFLICT DO NOTHING`, campusID)
		if err != nil {
			return err
		}
	}

	people := []struct{ id, name, email, campus string }{
		{"recseedperson0001", "Avery Smith", "avery@example.com", "recseedcampus0001"},
		{"recseedperson0002", "Jordan Lee", "jordan@example.com", "recseedcampus0002"},
		{"recseedperson0003", "Riley Chen", "riley@example.com", "recseedcampus0001"},
	}
	for _, p := range people {
		_, err = db.Exec(ctx, `INSERT INTO people (id, name, email, home_campus_id)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, p.id, p.name, p.email, p.campus)
		if err != nil {
			return err
		}
	}

	// one recurring pledge (total of $100/month for a year) and one one-time
	_, err = db.Exec(ctx, `INSERT INTO pledges
    (id, donor_id, campaign_id, campus_id, amount, pledge_date, notes, pledge_type, recurring_frequency, pledge_end_date)
VALUES ('recseedpledge0001', 'recseedperson0001', 'recseedcampaign01', 'recseedcampus0001',
        1200, $1, 'Pledge created via donor portal for New Building at North Campus', 'Recurring', 'Monthly', $2)
ON CONFLICT DO NOTHING`, start, end)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO pledges
    (id, donor_id, campaign_id, campus_id, amount, pledge_date, notes, pledge_type)
VALUES ('recseedpledge0002', 'recseedperson0002', 'recseedcampaign01', 'recseedcampus0002',
        500, $1, '', 'One-time')
ON CONFLICT DO NOTHING`, start)
	if err != nil {
		return err
	}

	gifts := []struct {
		id, donor, campus, typ, freq string
		amount                       int
	}{
		{"recseedgift000001", "recseedperson0001", "recseedcampus0001", "Recurring", "Monthly", 100},
		{"recseedgift000002", "recseedperson0002", "recseedcampus0002", "One-time", "", 500},
		{"recseedgift000003", "recseedperson0003", "recseedcampus0001", "One-time", "", 250},
	}
	for _, g := range gifts {
		var freq interface{}
		if g.freq != "" {
			freq = g.freq
		}
		_, err = db.Exec(ctx, `INSERT INTO gifts
    (id, donor_id, campaign_id, campus_id, amount, gift_date, gift_type, recurring_frequency)
VALUES ($1,$2,'recseedcampaign01',$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			g.id, g.donor, g.campus, g.amount, start, g.typ, freq)
		if err != nil {
			return err
		}
	}
	return nil
}
