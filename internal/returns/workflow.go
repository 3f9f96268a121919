package returns

import (
	"peminjaman/internal/api"
	"peminjaman/internal/loans"
	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"
)

// Workflow tracks the physical handback of everything bound to one approved
// loan. It lives only between initiation and confirm/cancel; nothing in it is
// persisted, and re-initiating rebuilds the set from the loan itself.
type Workflow struct {
	loan  models.Loan
	items []models.ReturnItem
	notes string
}

// NewWorkflow builds the working set from the loan's room reference and
// facility entries. The loan must be in "disetujui".
func NewWorkflow(loan *models.Loan) (*Workflow, error) {
	if loans.Status(loan.Status) != loans.StatusDisetujui {
		return nil, apierr.NewValidation("pengembalian hanya dapat diproses untuk peminjaman yang disetujui")
	}
	if !loan.HasItems() {
		return nil, apierr.NewValidation("peminjaman tidak memiliki item untuk dikembalikan")
	}

	w := &Workflow{loan: *loan}
	if loan.RoomID != "" {
		w.items = append(w.items, models.ReturnItem{
			ID:        loan.RoomID,
			Name:      loan.RoomName,
			Type:      models.ItemTypeRoom,
			Quantity:  1,
			Condition: models.CondBaik,
		})
	}
	for _, f := range loan.Facilities {
		w.items = append(w.items, models.ReturnItem{
			ID:        f.ID,
			Name:      f.Name,
			Type:      models.ItemTypeFacility,
			Quantity:  f.Quantity,
			Condition: models.CondBaik,
		})
	}
	return w, nil
}

func (w *Workflow) LoanID() string {
	return w.loan.ID
}

// Items returns a copy of the working set.
func (w *Workflow) Items() []models.ReturnItem {
	out := make([]models.ReturnItem, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Workflow) find(itemID string) (*models.ReturnItem, error) {
	for i := range w.items {
		if w.items[i].ID == itemID {
			return &w.items[i], nil
		}
	}
	return nil, apierr.NewValidation("item %q tidak ada dalam peminjaman ini", itemID)
}

// SetReturned flips the returned flag of one item. Un-returning resets the
// condition back to baik.
func (w *Workflow) SetReturned(itemID string, returned bool) error {
	item, err := w.find(itemID)
	if err != nil {
		return err
	}
	item.Returned = returned
	if !returned {
		item.Condition = models.CondBaik
	}
	return nil
}

// SetCondition grades a returned item. Condition is only meaningful once the
// item is marked returned.
func (w *Workflow) SetCondition(itemID string, condition models.Condition) error {
	if !condition.IsValid() {
		return apierr.NewValidation("kondisi %q tidak dikenal", condition)
	}
	item, err := w.find(itemID)
	if err != nil {
		return err
	}
	if !item.Returned {
		return apierr.NewValidation("kondisi hanya dapat diisi setelah item ditandai kembali")
	}
	item.Condition = condition
	return nil
}

func (w *Workflow) SetNotes(notes string) {
	w.notes = notes
}

// Warning annotates a non-baik condition. Warnings never block confirmation.
type Warning struct {
	ItemID  string
	Name    string
	Message string
}

func (w *Workflow) Warnings() []Warning {
	var warnings []Warning
	for _, item := range w.items {
		if !item.Returned {
			continue
		}
		var message string
		switch item.Condition {
		case models.CondRusakRingan:
			message = "needs minor repair"
		case models.CondRusakBerat:
			message = "needs major repair"
		case models.CondHilang:
			message = "item lost, follow-up required"
		default:
			continue
		}
		warnings = append(warnings, Warning{ItemID: item.ID, Name: item.Name, Message: message})
	}
	return warnings
}

// Outstanding lists the items still not marked returned.
func (w *Workflow) Outstanding() []models.ReturnItem {
	var out []models.ReturnItem
	for _, item := range w.items {
		if !item.Returned {
			out = append(out, item)
		}
	}
	return out
}

// CanConfirm is the hard gate: every item must be returned.
func (w *Workflow) CanConfirm() bool {
	for _, item := range w.items {
		if !item.Returned {
			return false
		}
	}
	return len(w.items) > 0
}

func (w *Workflow) payload() api.ProcessReturnPayload {
	payload := api.ProcessReturnPayload{Notes: w.notes}
	for _, item := range w.items {
		if !item.Returned {
			continue
		}
		payload.ReturnedItems = append(payload.ReturnedItems, models.ReturnedItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Condition: item.Condition,
		})
	}
	return payload
}
