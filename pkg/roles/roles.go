package roles

// Role identifies the permission level of a logged-in user.
type Role string

const (
	Mahasiswa Role = "mahasiswa"
	Dosen     Role = "dosen"
	Staf      Role = "staf"
	StafBUF   Role = "staf_buf"
	AdminBUF  Role = "admin_buf"
	KepalaBUF Role = "kepala_buf"
)

// Capabilities is the full set of actions a role may perform. Every page-level
// operation consults this before exposing a mutating action.
type Capabilities struct {
	CanCreateLoan   bool
	CanApprove      bool
	CanManageAssets bool
	CanEditReports  bool
	CanExport       bool
	VisibleNavItems []string
}

// Capabilities returns the capability set for the role. Unknown roles get the
// zero value: no actions, no navigation (fail closed).
func (r Role) Capabilities() Capabilities {
	switch r {
	case Mahasiswa, Dosen, Staf:
		return Capabilities{
			CanCreateLoan:   true,
			VisibleNavItems: []string{"dashboard", "peminjaman", "riwayat", "lapor-kerusakan"},
		}
	case StafBUF:
		return Capabilities{
			CanApprove:      true,
			VisibleNavItems: []string{"dashboard", "persetujuan", "pengembalian"},
		}
	case AdminBUF:
		return Capabilities{
			CanApprove:      true,
			CanManageAssets: true,
			CanEditReports:  true,
			CanExport:       true,
			VisibleNavItems: []string{"dashboard", "aset", "persetujuan", "pengembalian", "laporan-kerusakan", "ekspor"},
		}
	case KepalaBUF:
		return Capabilities{
			CanEditReports:  true,
			CanExport:       true,
			VisibleNavItems: []string{"dashboard", "riwayat", "analitik-kerusakan", "ekspor"},
		}
	default:
		return Capabilities{}
	}
}

// IsBorrower reports whether the role belongs to the civitas group that may
// submit loan requests and damage reports.
func (r Role) IsBorrower() bool {
	switch r {
	case Mahasiswa, Dosen, Staf:
		return true
	default:
		return false
	}
}

// IsValid reports whether the role is part of the closed enumeration.
func (r Role) IsValid() bool {
	switch r {
	case Mahasiswa, Dosen, Staf, StafBUF, AdminBUF, KepalaBUF:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
