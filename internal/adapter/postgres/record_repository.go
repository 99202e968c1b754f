package postgres

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

// RecordRepository implements port.RecordRepository using pgxpool for PostgreSQL.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository returns a new repository instance.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// newRecordID mints an opaque record identifier: "rec" followed by 15 hex
// characters of a fresh UUID.
func newRecordID() string {
	u := uuid.New()
	return "rec" + hex.EncodeToString(u[:])[:15]
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListCampuses returns campuses, optionally restricted to Active ones.
func (r *RecordRepository) ListCampuses(ctx context.Context, activeOnly bool) ([]domain.Campus, error) {
	query := `SELECT id, name, address, status FROM campuses`
	if activeOnly {
		query += ` WHERE status = 'Active'`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campus, error) {
		var c domain.Campus
		err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Status)
		return c, err
	})
}

// FindCampus returns a campus by id, or nil when absent.
func (r *RecordRepository) FindCampus(ctx context.Context, id string) (*domain.Campus, error) {
	var c domain.Campus
	err := r.pool.QueryRow(ctx, `SELECT id, name, address, status FROM campuses WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListListings returns listings together with the campuses each is offered at.
func (r *RecordRepository) ListListings(ctx context.Context, f port.ListingFilter) ([]domain.Listing, error) {
	query := `SELECT id, name, type, status FROM listings WHERE 1=1`
	if f.ActiveOnly {
		query += ` AND status = 'Active'`
	}
	if f.OrgOnly {
		query += ` AND type = 'Organization'`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	listings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Listing, error) {
		var l domain.Listing
		err := row.Scan(&l.ID, &l.Name, &l.Type, &l.Status)
		return l, err
	})
	if err != nil {
		return nil, err
	}
	if err := r.attachListingCampuses(ctx, listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// FindListing returns a listing by id with its campus links, or nil when absent.
func (r *RecordRepository) FindListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.pool.QueryRow(ctx, `SELECT id, name, type, status FROM listings WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Type, &l.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	one := []domain.Listing{l}
	if err := r.attachListingCampuses(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *RecordRepository) attachListingCampuses(ctx context.Context, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	rows, err := r.pool.Query(ctx, `SELECT listing_id, campus_id FROM listing_campuses`)
	if err != nil {
		return err
	}
	type link struct{ ListingID, CampusID string }
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (link, error) {
		var lk link
		err := row.Scan(&lk.ListingID, &lk.CampusID)
		return lk, err
	})
	if err != nil {
		return err
	}
	byListing := make(map[string][]string, len(listings))
	for _, lk := range links {
		byListing[lk.ListingID] = append(byListing[lk.ListingID], lk.CampusID)
	}
	for i := range listings {
		listings[i].CampusIDs = byListing[listings[i].ID]
	}
	return nil
}

// CreateFund inserts a fund and returns it with a minted id.
func (r *RecordRepository) CreateFund(ctx context.Context, fund domain.Fund) (*domain.Fund, error) {
	fund.ID = newRecordID()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO funds (id, name, code, tax_deductible, thank_you_message, thank_you_animation) VALUES ($1,$2,$3,$4,$5,$6)`,
		fund.ID, fund.Name, fund.Code, fund.TaxDeductible, fund.ThankYouMessage, fund.ThankYouAnimation)
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

const campaignColumns = `id, name, description, financial_goal, start_date, end_date, status, scope, donation_destination, org_fund_listing_id, fund_id, phone_number, email_address, created_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	var orgListing, fundID *string
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.FinancialGoal,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.Scope,
		&c.DonationDestination,
		&orgListing,
		&fundID,
		&c.PhoneNumber,
		&c.EmailAddress,
		&c.CreatedAt,
	)
	c.OrgFundListingID = fromNullable(orgListing)
	c.FundID = fromNullable(fundID)
	return c, err
}

// ListCampaigns returns all campaigns with their assigned campuses, newest first.
func (r *RecordRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, err
	}
	linkRows, err := r.pool.Query(ctx, `SELECT campaign_id, campus_id FROM campaign_campuses`)
	if err != nil {
		return nil, err
	}
	type link struct{ CampaignID, CampusID string }
	links, err := pgx.CollectRows(linkRows, func(row pgx.CollectableRow) (link, error) {
		var lk link
		err := row.Scan(&lk.CampaignID, &lk.CampusID)
		return lk, err
	})
	if err != nil {
		return nil, err
	}
	byCampaign := make(map[string][]string, len(campaigns))
	for _, lk := range links {
		byCampaign[lk.CampaignID] = append(byCampaign[lk.CampaignID], lk.CampusID)
	}
	for i := range campaigns {
		campaigns[i].AssignedCampusIDs = byCampaign[campaigns[i].ID]
	}
	return campaigns, nil
}

// FindCampaign returns a campaign by id with its assigned campuses, or nil
// when absent.
func (r *RecordRepository) FindCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT campus_id FROM campaign_campuses WHERE campaign_id = $1`, id)
	if err != nil {
		return nil, err
	}
	c.AssignedCampusIDs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var campusID string
		err := row.Scan(&campusID)
		return campusID, err
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a campaign and its campus assignments in one
// transaction and returns the stored record.
func (r *RecordRepository) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	c.ID = newRecordID()
	c.CreatedAt = time.Now().UTC()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	_, err = tx.Exec(ctx,
		`INSERT INTO campaigns (id, name, description, financial_goal, start_date, end_date, status, scope, donation_destination, org_fund_listing_id, fund_id, phone_number, email_address, created_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.Name, c.Description, c.FinancialGoal, c.StartDate, c.EndDate, c.Status, c.Scope,
		c.DonationDestination, nullable(c.OrgFundListingID), nullable(c.FundID), c.PhoneNumber, c.EmailAddress, c.CreatedAt)
	if err != nil {
		return nil, err
	}
	for _, campusID := range c.AssignedCampusIDs {
		_, err = tx.Exec(ctx, `INSERT INTO campaign_campuses (campaign_id, campus_id) VALUES ($1,$2)`, c.ID, campusID)
		if err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// UpdateCampaignStatus sets the campaign status.
func (r *RecordRepository) UpdateCampaignStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// CreateCampusGoal inserts a per-campus goal row.
func (r *RecordRepository) CreateCampusGoal(ctx context.Context, g domain.CampusGoal) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campus_goals (campaign_id, campus_id, goal) VALUES ($1,$2,$3)`,
		g.CampaignID, g.CampusID, g.Goal)
	return err
}

// ListCampusGoals returns the per-campus goals of a campaign.
func (r *RecordRepository) ListCampusGoals(ctx context.Context, campaignID string) ([]domain.CampusGoal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id, campus_id, goal FROM campus_goals WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampusGoal, error) {
		var g domain.CampusGoal
		err := row.Scan(&g.CampaignID, &g.CampusID, &g.Goal)
		return g, err
	})
}

func scanDonor(row pgx.Row) (domain.Donor, error) {
	var d domain.Donor
	var home *string
	err := row.Scan(&d.ID, &d.Name, &d.Email, &home)
	d.HomeCampusID = fromNullable(home)
	return d, err
}

// ListDonors returns every person on file.
func (r *RecordRepository) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, home_campus_id FROM people ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donor, error) {
		return scanDonor(row)
	})
}

// FindDonor returns a person by id, or nil when absent.
func (r *RecordRepository) FindDonor(ctx context.Context, id string) (*domain.Donor, error) {
	d, err := scanDonor(r.pool.QueryRow(ctx, `SELECT id, name, email, home_campus_id FROM people WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindDonorByEmail returns a person by exact, case-sensitive email match,
// or nil when absent.
func (r *RecordRepository) FindDonorByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	d, err := scanDonor(r.pool.QueryRow(ctx,
		`SELECT id, name, email, home_campus_id FROM people WHERE email = $1 ORDER BY created_at LIMIT 1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SearchDonors returns people whose name or email contains the query,
// case-insensitively.
func (r *RecordRepository) SearchDonors(ctx context.Context, query string, limit int) ([]domain.Donor, error) {
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, home_campus_id FROM people WHERE name ILIKE $1 OR email ILIKE $1 ORDER BY name LIMIT $2`,
		pattern, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donor, error) {
		return scanDonor(row)
	})
}

// CreateDonor inserts a person and returns the record with a minted id.
func (r *RecordRepository) CreateDonor(ctx context.Context, d domain.Donor) (*domain.Donor, error) {
	d.ID = newRecordID()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO people (id, name, email, home_campus_id) VALUES ($1,$2,$3,$4)`,
		d.ID, d.Name, d.Email, nullable(d.HomeCampusID))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const pledgeColumns = `id, donor_id, campaign_id, campus_id, amount, pledge_date, notes, pledge_type, recurring_frequency, pledge_end_date`

func scanPledge(row pgx.Row) (domain.Pledge, error) {
	var p domain.Pledge
	var freq *string
	err := row.Scan(
		&p.ID,
		&p.DonorID,
		&p.CampaignID,
		&p.CampusID,
		&p.TotalCommitment,
		&p.PledgeDate,
		&p.Notes,
		&p.Type,
		&freq,
		&p.EndDate,
	)
	p.Frequency = domain.Frequency(fromNullable(freq))
	return p, err
}

// pledgeWhere builds the filter clause shared by ListPledges and
// CountPledges.
func pledgeWhere(q port.PledgeQuery) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	if q.CampaignID != "" {
		args = append(args, q.CampaignID)
		conds = append(conds, fmt.Sprintf(`campaign_id = $%d`, len(args)))
	}
	if !q.Since.IsZero() {
		args = append(args, q.Since)
		conds = append(conds, fmt.Sprintf(`pledge_date >= $%d`, len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return ` WHERE ` + strings.Join(conds, ` AND `), args
}

// ListPledges returns pledges by pledge date, newest first, narrowed and
// paginated by q.
func (r *RecordRepository) ListPledges(ctx context.Context, q port.PledgeQuery) ([]domain.Pledge, error) {
	where, args := pledgeWhere(q)
	query := `SELECT ` + pledgeColumns + ` FROM pledges` + where + ` ORDER BY pledge_date DESC`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Pledge, error) {
		return scanPledge(row)
	})
}

// CountPledges counts the pledges matching q, ignoring its paging fields.
func (r *RecordRepository) CountPledges(ctx context.Context, q port.PledgeQuery) (int, error) {
	where, args := pledgeWhere(q)
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pledges`+where, args...).Scan(&n)
	return n, err
}

// FindPledge returns a pledge by id, or nil when absent.
func (r *RecordRepository) FindPledge(ctx context.Context, id string) (*domain.Pledge, error) {
	p, err := scanPledge(r.pool.QueryRow(ctx, `SELECT `+pledgeColumns+` FROM pledges WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPledgeFor returns the donor's existing pledge to the campaign at the
// campus, or nil when none exists.
func (r *RecordRepository) FindPledgeFor(ctx context.Context, donorID, campaignID, campusID string) (*domain.Pledge, error) {
	p, err := scanPledge(r.pool.QueryRow(ctx,
		`SELECT `+pledgeColumns+` FROM pledges WHERE donor_id = $1 AND campaign_id = $2 AND campus_id = $3 ORDER BY created_at LIMIT 1`,
		donorID, campaignID, campusID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePledge inserts a pledge inside a serializable transaction that
// re-checks for an existing pledge by the same donor to the same campaign
// and campus. A concurrent or prior duplicate surfaces as
// port.DuplicatePledgeError carrying the existing record.
func (r *RecordRepository) CreatePledge(ctx context.Context, p domain.Pledge) (*domain.Pledge, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	existing, scanErr := scanPledge(tx.QueryRow(ctx,
		`SELECT `+pledgeColumns+` FROM pledges WHERE donor_id = $1 AND campaign_id = $2 AND campus_id = $3 ORDER BY created_at LIMIT 1`,
		p.DonorID, p.CampaignID, p.CampusID))
	if scanErr == nil {
		err = &port.DuplicatePledgeError{Existing: existing}
		return nil, err
	}
	if !errors.Is(scanErr, pgx.ErrNoRows) {
		err = scanErr
		return nil, err
	}
	p.ID = newRecordID()
	var freq *string
	if p.Recurring() {
		f := string(p.Frequency)
		freq = &f
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO pledges (id, donor_id, campaign_id, campus_id, amount, pledge_date, notes, pledge_type, recurring_frequency, pledge_end_date)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, p.DonorID, p.CampaignID, p.CampusID, p.TotalCommitment, p.PledgeDate, p.Notes, p.Type, freq, p.EndDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePledge overwrites a pledge's mutable fields and returns the stored
// record, or nil when the pledge no longer exists.
func (r *RecordRepository) UpdatePledge(ctx context.Context, p domain.Pledge) (*domain.Pledge, error) {
	var freq *string
	if p.Recurring() {
		f := string(p.Frequency)
		freq = &f
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE pledges SET campus_id = $1, amount = $2, pledge_date = $3, notes = $4, pledge_type = $5, recurring_frequency = $6, pledge_end_date = $7 WHERE id = $8`,
		p.CampusID, p.TotalCommitment, p.PledgeDate, p.Notes, p.Type, freq, p.EndDate, p.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return &p, nil
}

// DeletePledge removes a pledge. Deleting an absent pledge returns
// port.ErrNotFound.
func (r *RecordRepository) DeletePledge(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pledges WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ListGifts returns the gifts of a campaign, or every gift when campaignID
// is empty.
func (r *RecordRepository) ListGifts(ctx context.Context, campaignID string) ([]domain.Gift, error) {
	query := `SELECT id, donor_id, campaign_id, campus_id, amount, gift_date, gift_type, recurring_frequency FROM gifts`
	args := []interface{}{}
	if campaignID != "" {
		query += ` WHERE campaign_id = $1`
		args = append(args, campaignID)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Gift, error) {
		var g domain.Gift
		var freq *string
		err := row.Scan(&g.ID, &g.DonorID, &g.CampaignID, &g.CampusID, &g.PerPeriodAmount, &g.GiftDate, &g.Type, &freq)
		g.Frequency = domain.Frequency(fromNullable(freq))
		return g, err
	})
}

// CreateGift inserts a gift and returns it with a minted id.
func (r *RecordRepository) CreateGift(ctx context.Context, g domain.Gift) (*domain.Gift, error) {
	g.ID = newRecordID()
	var freq *string
	if g.Type == domain.TypeRecurring {
		f := string(g.Frequency)
		freq = &f
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO gifts (id, donor_id, campaign_id, campus_id, amount, gift_date, gift_type, recurring_frequency)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		g.ID, g.DonorID, g.CampaignID, g.CampusID, g.PerPeriodAmount, g.GiftDate, g.Type, freq)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
