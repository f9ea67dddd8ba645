package service

import (
	"strings"

	"github.com/runforua/donorboard/internal/domain/invoice"
	"github.com/runforua/donorboard/internal/domain/report"
)

// citySeparator splits a city value that has a province embedded in it.
const citySeparator = ", "

// sanitizeAddress flattens a possibly-partial source address into the six
// report columns. The source's geocoding sometimes writes "City, Province"
// into the city field; when a comma-separated suffix is present, the last
// segment is the true province and the rest is the corrected city. Absent
// fields stay nil throughout; a nil address yields six nil columns.
func sanitizeAddress(raw *invoice.Address) report.Address {
	var out report.Address
	if raw == nil {
		return out
	}

	if raw.City != nil && strings.Contains(*raw.City, citySeparator) {
		parts := strings.Split(*raw.City, citySeparator)
		city := strings.Join(parts[:len(parts)-1], citySeparator)
		province := parts[len(parts)-1]
		out.City = &city
		out.Province = &province
	} else {
		out.City = raw.City
		if raw.Province != nil {
			out.Province = raw.Province.Name
		}
	}

	if raw.Country != nil {
		out.Country = raw.Country.Name
	}

	out.Line1 = raw.AddressLine1
	out.Line2 = raw.AddressLine2
	out.PostalCode = raw.PostalCode

	return out
}
