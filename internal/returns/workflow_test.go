package returns

import (
	"testing"

	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedLoan() *models.Loan {
	return &models.Loan{
		ID:       "l1",
		RoomID:   "a1",
		RoomName: "Ruang Seminar Lt. 2",
		Facilities: []models.FacilityItem{
			{ID: "a2", Name: "Proyektor Epson", Quantity: 2},
			{ID: "a3", Name: "Kursi Lipat", Quantity: 40},
		},
		Status: "disetujui",
	}
}

func TestNewWorkflowBuildsItems(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)

	items := w.Items()
	require.Len(t, items, 3)

	assert.Equal(t, models.ReturnItem{
		ID: "a1", Name: "Ruang Seminar Lt. 2", Type: models.ItemTypeRoom,
		Quantity: 1, Returned: false, Condition: models.CondBaik,
	}, items[0])
	assert.Equal(t, models.ItemTypeFacility, items[1].Type)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, 40, items[2].Quantity)
	for _, item := range items {
		assert.False(t, item.Returned)
		assert.Equal(t, models.CondBaik, item.Condition)
	}
}

func TestNewWorkflowRequiresApprovedLoan(t *testing.T) {
	for _, status := range []string{"menunggu", "ditolak", "selesai", "menunggu_pengembalian"} {
		loan := approvedLoan()
		loan.Status = status
		_, err := NewWorkflow(loan)
		assert.True(t, apierr.IsValidation(err), "status %s must be refused", status)
	}
}

func TestNewWorkflowRequiresItems(t *testing.T) {
	loan := &models.Loan{ID: "l2", Status: "disetujui"}
	_, err := NewWorkflow(loan)
	assert.True(t, apierr.IsValidation(err))
}

func TestRoomOnlyLoan(t *testing.T) {
	loan := &models.Loan{ID: "l3", RoomID: "a1", RoomName: "Aula", Status: "disetujui"}
	w, err := NewWorkflow(loan)
	require.NoError(t, err)

	items := w.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, models.ItemTypeRoom, items[0].Type)
	assert.False(t, items[0].Returned)
}

func TestSetReturnedAndCondition(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)

	// Condition is locked until the item is marked returned.
	err = w.SetCondition("a2", models.CondRusakRingan)
	assert.True(t, apierr.IsValidation(err))

	require.NoError(t, w.SetReturned("a2", true))
	require.NoError(t, w.SetCondition("a2", models.CondRusakRingan))

	// Un-returning resets the grade.
	require.NoError(t, w.SetReturned("a2", false))
	for _, item := range w.Items() {
		if item.ID == "a2" {
			assert.False(t, item.Returned)
			assert.Equal(t, models.CondBaik, item.Condition)
		}
	}
}

func TestSetReturnedUnknownItem(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)
	assert.True(t, apierr.IsValidation(w.SetReturned("zzz", true)))
	assert.True(t, apierr.IsValidation(w.SetCondition("zzz", models.CondBaik)))
}

func TestSetConditionRejectsUnknownGrade(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)
	require.NoError(t, w.SetReturned("a1", true))
	assert.True(t, apierr.IsValidation(w.SetCondition("a1", "hancur")))
}

func TestWarnings(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)

	require.NoError(t, w.SetReturned("a1", true))
	require.NoError(t, w.SetReturned("a2", true))
	require.NoError(t, w.SetReturned("a3", true))
	require.NoError(t, w.SetCondition("a2", models.CondRusakBerat))
	require.NoError(t, w.SetCondition("a3", models.CondHilang))

	warnings := w.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "needs major repair", warnings[0].Message)
	assert.Equal(t, "item lost, follow-up required", warnings[1].Message)

	// Warnings never block the gate.
	assert.True(t, w.CanConfirm())
}

func TestConfirmGate(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)

	assert.False(t, w.CanConfirm())
	assert.Len(t, w.Outstanding(), 3)

	require.NoError(t, w.SetReturned("a1", true))
	require.NoError(t, w.SetReturned("a2", true))
	assert.False(t, w.CanConfirm(), "one outstanding item must keep the gate shut")
	assert.Len(t, w.Outstanding(), 1)

	require.NoError(t, w.SetReturned("a3", true))
	assert.True(t, w.CanConfirm())
	assert.Empty(t, w.Outstanding())
}

func TestReinitiateDiscardsToggling(t *testing.T) {
	loan := approvedLoan()
	w, err := NewWorkflow(loan)
	require.NoError(t, err)
	require.NoError(t, w.SetReturned("a1", true))
	require.NoError(t, w.SetCondition("a1", models.CondRusakRingan))

	// A fresh workflow for the same loan starts from scratch.
	fresh, err := NewWorkflow(loan)
	require.NoError(t, err)
	for _, item := range fresh.Items() {
		assert.False(t, item.Returned)
		assert.Equal(t, models.CondBaik, item.Condition)
	}
}

func TestPayloadShape(t *testing.T) {
	w, err := NewWorkflow(approvedLoan())
	require.NoError(t, err)
	require.NoError(t, w.SetReturned("a1", true))
	require.NoError(t, w.SetReturned("a2", true))
	require.NoError(t, w.SetReturned("a3", true))
	require.NoError(t, w.SetCondition("a3", models.CondRusakRingan))
	w.SetNotes("dikembalikan lengkap")

	payload := w.payload()
	require.Len(t, payload.ReturnedItems, 3)
	assert.Equal(t, "dikembalikan lengkap", payload.Notes)
	assert.Equal(t, models.ReturnedItem{ID: "a3", Name: "Kursi Lipat", Quantity: 40, Condition: models.CondRusakRingan}, payload.ReturnedItems[2])
}
