package tracking

// Record is one click-attribution item written by the external tracking
// pipeline. Read-only here.
type Record struct {
	// BusinessID is the partition key of the tracking table
	BusinessID string `dynamodbav:"business_id" json:"business_id"`

	// DonationID joins a record to an invoice's decoded invoice id
	DonationID string `dynamodbav:"donation_id" json:"donation_id"`

	// Referrer is the landing URL the donor arrived through; UTM fields
	// are derived from its query string
	Referrer string `dynamodbav:"referrer" json:"referrer"`

	// Attributes carries any further attribution fields verbatim
	Attributes map[string]interface{} `dynamodbav:"-" json:"attributes,omitempty"`
}
