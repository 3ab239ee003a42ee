package media

import "github.com/pkg/errors"

var (
	errNoTenant        = errors.New("no tenant selected")
	errTenantForbidden = errors.New("no access to this tenant")
)
