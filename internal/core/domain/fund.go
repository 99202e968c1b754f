package domain

// Fund is the donation destination created once per campaign by the
// creation wizard. It is never updated afterwards.
type Fund struct {
	ID                string
	Name              string
	Code              string
	TaxDeductible     bool
	ThankYouMessage   string
	ThankYouAnimation string
}
