package httpclient

import (
	"fmt"
	"net/http"

	ierr "github.com/runforua/donorboard/internal/errors"
)

// NewError converts a non-2xx HTTP response into a marked error. 401/403
// from the accounting API surface as permission errors so the operator can
// tell a revoked token apart from an outage.
func NewError(statusCode int, body []byte) error {
	builder := ierr.NewError(fmt.Sprintf("http status %d", statusCode)).
		WithHintf("The remote service responded with status %d", statusCode).
		WithReportableDetails(map[string]any{
			"status_code": statusCode,
			"body":        string(body),
		})

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return builder.Mark(ierr.ErrPermissionDenied)
	default:
		return builder.Mark(ierr.ErrHTTPClient)
	}
}
