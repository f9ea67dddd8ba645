package types

// InvoiceStatus represents the current state of an invoice in the remote
// accounting system. The set is open: the source may introduce new values,
// so unknown statuses are carried through as-is rather than rejected.
type InvoiceStatus string

const (
	// InvoiceStatusDraft is an invoice that was started but never sent
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	// InvoiceStatusSaved is an invoice that was saved but not yet viewed
	InvoiceStatusSaved InvoiceStatus = "SAVED"
	// InvoiceStatusViewed is an invoice the donor opened but did not pay
	InvoiceStatusViewed InvoiceStatus = "VIEWED"
	// InvoiceStatusPaid is a completed donation
	InvoiceStatusPaid InvoiceStatus = "PAID"
	// InvoiceStatusOverdue is an unpaid invoice past its due date
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// IsPaid reports whether the invoice represents a completed donation.
func (s InvoiceStatus) IsPaid() bool {
	return s == InvoiceStatusPaid
}

// IsAbandoned reports whether the donor started checkout but never paid.
// Drafts are excluded since they were never presented to a donor.
func (s InvoiceStatus) IsAbandoned() bool {
	return s != InvoiceStatusPaid && s != InvoiceStatusDraft
}

// SentVia represents the channel an invoice was last sent through.
type SentVia string

const (
	SentViaNotSent    SentVia = "NOT_SENT"
	SentViaMarkedSent SentVia = "MARKED_SENT"
	SentViaEmail      SentVia = "EMAIL"
)

func (s SentVia) String() string {
	return string(s)
}
