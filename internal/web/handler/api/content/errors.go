package content

import "github.com/pkg/errors"

var (
	// ErrNoTenant is returned when no acting tenant can be determined.
	ErrNoTenant = errors.New("no tenant selected")

	// ErrTenantForbidden is returned when the user may not act on the tenant.
	ErrTenantForbidden = errors.New("no access to this tenant")
)
