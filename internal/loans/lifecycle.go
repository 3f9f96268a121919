package loans

import (
	"fmt"
	"time"

	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"
)

type Status string

const (
	StatusMenunggu             Status = "menunggu"
	StatusDisetujui            Status = "disetujui"
	StatusDitolak              Status = "ditolak"
	StatusMenungguPengembalian Status = "menunggu_pengembalian"
	StatusSelesai              Status = "selesai"
)

const (
	SemesterGanjil = "ganjil"
	SemesterGenap  = "genap"
)

const dateLayout = "2006-01-02"

func (s Status) isValid() bool {
	switch s {
	case StatusMenunggu, StatusDisetujui, StatusDitolak, StatusMenungguPengembalian, StatusSelesai:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the loan can never leave this state again.
func (s Status) IsTerminal() bool {
	return s == StatusSelesai || s == StatusDitolak
}

func (s Status) String() string {
	return string(s)
}

// NewUpdateStatus validates a status literal supplied for a direct status
// update. Only the four post-creation states are accepted; "menunggu" is the
// creation state and can never be set explicitly.
func NewUpdateStatus(value string) (Status, error) {
	status := Status(value)
	if !status.isValid() || status == StatusMenunggu {
		return "", apierr.NewValidation("status tidak valid")
	}
	return status, nil
}

// transitions is the closed transition table. disetujui → menunggu_pengembalian
// and disetujui → selesai are listed because the return workflow drives them;
// ValidateTransition is still the single authority on legality.
var transitions = map[Status][]Status{
	StatusMenunggu:             {StatusDisetujui, StatusDitolak},
	StatusDisetujui:            {StatusMenungguPengembalian, StatusSelesai},
	StatusMenungguPengembalian: {StatusSelesai},
}

// ValidateTransition rejects any from→to pair not in the transition table.
func ValidateTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return apierr.NewValidation("transisi status %s ke %s tidak diizinkan", from, to)
}

// ValidateDirectEdit restricts what an approver may set by hand: approving or
// rejecting a pending loan. Everything out of disetujui belongs to the return
// workflow and is refused here even though the transition itself is legal.
func ValidateDirectEdit(from, to Status) error {
	if err := ValidateTransition(from, to); err != nil {
		return err
	}
	if from == StatusDisetujui || from == StatusMenungguPengembalian {
		return apierr.NewValidation("status peminjaman yang disetujui hanya dapat diubah melalui proses pengembalian")
	}
	return nil
}

// DefaultAcademicTerm derives the academic year and semester from a date:
// July onwards belongs to the odd (ganjil) semester of {year}/{year+1},
// anything earlier to the even (genap) semester of {year-1}/{year}.
func DefaultAcademicTerm(t time.Time) (academicYear, semester string) {
	year := t.Year()
	if int(t.Month()) >= 7 {
		return fmt.Sprintf("%d/%d", year, year+1), SemesterGanjil
	}
	return fmt.Sprintf("%d/%d", year-1, year), SemesterGenap
}

// IsOverdue reports whether the loan is past its end date and still not in a
// terminal state. Comparison is date-only in local time.
func IsOverdue(loan *models.Loan, now time.Time) bool {
	if Status(loan.Status).IsTerminal() {
		return false
	}
	end, err := time.ParseInLocation(dateLayout, loan.EndDate, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return end.Before(today)
}
