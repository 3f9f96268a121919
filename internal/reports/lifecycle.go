package reports

import "peminjaman/pkg/apierr"

type Status string

const (
	StatusMenunggu       Status = "menunggu"
	StatusDalamPerbaikan Status = "dalam_perbaikan"
	StatusSelesai        Status = "selesai"
)

type Priority string

const (
	PriorityRendah Priority = "rendah"
	PrioritySedang Priority = "sedang"
	PriorityTinggi Priority = "tinggi"
)

// order positions each status on the forward-only repair track.
var order = map[Status]int{
	StatusMenunggu:       0,
	StatusDalamPerbaikan: 1,
	StatusSelesai:        2,
}

func NewStatus(value string) (Status, error) {
	status := Status(value)
	if _, ok := order[status]; !ok {
		return "", apierr.NewValidation("status laporan %q tidak valid", value)
	}
	return status, nil
}

// ValidateTransition allows only forward movement; a resolved report never
// reopens.
func ValidateTransition(from, to Status) error {
	if order[to] < order[from] {
		return apierr.NewValidation("status laporan tidak dapat kembali dari %s ke %s", from, to)
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

func NewPriority(value string) (Priority, error) {
	switch p := Priority(value); p {
	case PriorityRendah, PrioritySedang, PriorityTinggi:
		return p, nil
	default:
		return "", apierr.NewValidation("prioritas %q tidak valid", value)
	}
}
