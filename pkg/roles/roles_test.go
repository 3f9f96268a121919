package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want Capabilities
	}{
		{
			name: "mahasiswa can only borrow and report",
			role: Mahasiswa,
			want: Capabilities{CanCreateLoan: true},
		},
		{
			name: "dosen matches mahasiswa",
			role: Dosen,
			want: Capabilities{CanCreateLoan: true},
		},
		{
			name: "staf matches mahasiswa",
			role: Staf,
			want: Capabilities{CanCreateLoan: true},
		},
		{
			name: "staf_buf approves only",
			role: StafBUF,
			want: Capabilities{CanApprove: true},
		},
		{
			name: "admin_buf has full management",
			role: AdminBUF,
			want: Capabilities{CanApprove: true, CanManageAssets: true, CanEditReports: true, CanExport: true},
		},
		{
			name: "kepala_buf oversees without approving",
			role: KepalaBUF,
			want: Capabilities{CanEditReports: true, CanExport: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.role.Capabilities()
			assert.Equal(t, tt.want.CanCreateLoan, got.CanCreateLoan)
			assert.Equal(t, tt.want.CanApprove, got.CanApprove)
			assert.Equal(t, tt.want.CanManageAssets, got.CanManageAssets)
			assert.Equal(t, tt.want.CanEditReports, got.CanEditReports)
			assert.Equal(t, tt.want.CanExport, got.CanExport)
			assert.NotEmpty(t, got.VisibleNavItems)
		})
	}
}

func TestCapabilitiesFailClosed(t *testing.T) {
	for _, role := range []Role{"", "hacker", "ADMIN_BUF", "admin"} {
		got := role.Capabilities()
		assert.Equal(t, Capabilities{}, got, "role %q must get an empty capability set", role)
	}
}

func TestOnlyManagersEditReports(t *testing.T) {
	all := []Role{Mahasiswa, Dosen, Staf, StafBUF, AdminBUF, KepalaBUF}
	for _, role := range all {
		canEdit := role.Capabilities().CanEditReports
		if role == AdminBUF || role == KepalaBUF {
			assert.True(t, canEdit, "%s must edit reports", role)
		} else {
			assert.False(t, canEdit, "%s must not edit reports", role)
		}
	}
}

func TestIsBorrower(t *testing.T) {
	assert.True(t, Mahasiswa.IsBorrower())
	assert.True(t, Dosen.IsBorrower())
	assert.True(t, Staf.IsBorrower())
	assert.False(t, StafBUF.IsBorrower())
	assert.False(t, AdminBUF.IsBorrower())
	assert.False(t, Role("").IsBorrower())
}

func TestIsValid(t *testing.T) {
	assert.True(t, KepalaBUF.IsValid())
	assert.False(t, Role("satpam").IsValid())
}
