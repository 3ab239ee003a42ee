package tenantctx

import (
	"testing"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

func uintPtr(v uint64) *uint64 { return &v }

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.User
		header       string
		query        string
		wantTenant   string
		wantUser     string
		wantSuperAdm bool
	}{
		{
			name:       "user current tenant wins over header and query",
			user:       &models.User{ID: 4, CurrentTenantID: uintPtr(12)},
			header:     "99",
			query:      "77",
			wantTenant: "12",
			wantUser:   "4",
		},
		{
			name:       "header wins over query when user has no current tenant",
			user:       &models.User{ID: 4},
			header:     "99",
			query:      "77",
			wantTenant: "99",
			wantUser:   "4",
		},
		{
			name:       "query used last",
			user:       nil,
			query:      "77",
			wantTenant: "77",
		},
		{
			name:       "no source leaves tenant empty",
			user:       nil,
			wantTenant: "",
		},
		{
			name:         "super admin flag carried",
			user:         &models.User{ID: 1, IsSuperAdmin: true, CurrentTenantID: uintPtr(3)},
			wantTenant:   "3",
			wantUser:     "1",
			wantSuperAdm: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.user, tc.header, tc.query)

			if got.TenantID != tc.wantTenant {
				t.Errorf("TenantID = %q, want %q", got.TenantID, tc.wantTenant)
			}

			if got.UserID != tc.wantUser {
				t.Errorf("UserID = %q, want %q", got.UserID, tc.wantUser)
			}

			if got.IsSuperAdmin != tc.wantSuperAdm {
				t.Errorf("IsSuperAdmin = %v, want %v", got.IsSuperAdmin, tc.wantSuperAdm)
			}
		})
	}
}
