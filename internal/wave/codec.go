package wave

import (
	"encoding/base64"
	"strings"

	ierr "github.com/runforua/donorboard/internal/errors"
)

// UnknownBusinessID is the sentinel business id returned when a composite
// invoice identifier cannot be decoded.
const UnknownBusinessID = "unknown"

// DecodeInvoiceID decodes an opaque composite invoice identifier — the
// base64 encoding of "Business: <id>;Invoice: <id>" — into its business
// and invoice segments. It never fails: any malformed input degrades to
// ("unknown", value) so a single odd identifier cannot abort a report.
func DecodeInvoiceID(value string) (businessID, invoiceID string) {
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return UnknownBusinessID, value
	}

	parts := strings.Split(string(decoded), ";")
	if len(parts) < 2 {
		return UnknownBusinessID, value
	}

	businessID, ok := pairValue(parts[0])
	if !ok {
		return UnknownBusinessID, value
	}
	invoiceID, ok = pairValue(parts[1])
	if !ok {
		return UnknownBusinessID, value
	}

	return businessID, invoiceID
}

// pairValue extracts the value of a "key: value" pair, trimming whitespace.
func pairValue(part string) (string, bool) {
	_, value, found := strings.Cut(part, ":")
	if !found {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// DecodeBusinessID extracts the business segment from a base64 business
// identifier ("Business: <id>"). Unlike DecodeInvoiceID this is used at
// construction time, so malformed input is a hard error.
func DecodeBusinessID(value string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("The configured business id is not valid base64").
			Mark(ierr.ErrValidation)
	}

	id, ok := pairValue(string(decoded))
	if !ok || id == "" {
		return "", ierr.NewError("malformed business identifier").
			WithHint("The configured business id does not decode to a key: value pair").
			Mark(ierr.ErrValidation)
	}

	return id, nil
}
