package reports

import (
	"testing"

	"peminjaman/pkg/apierr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, value := range []string{"menunggu", "dalam_perbaikan", "selesai"} {
		status, err := NewStatus(value)
		require.NoError(t, err)
		assert.Equal(t, value, status.String())
	}

	_, err := NewStatus("ditolak")
	assert.True(t, apierr.IsValidation(err))
}

func TestValidateTransitionForwardOnly(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{"start repair", StatusMenunggu, StatusDalamPerbaikan, false},
		{"finish repair", StatusDalamPerbaikan, StatusSelesai, false},
		{"skip straight to done", StatusMenunggu, StatusSelesai, false},
		{"same status is a no-op", StatusDalamPerbaikan, StatusDalamPerbaikan, false},
		{"no reopening", StatusSelesai, StatusMenunggu, true},
		{"no going back to queue", StatusDalamPerbaikan, StatusMenunggu, true},
		{"no undoing completion", StatusSelesai, StatusDalamPerbaikan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.True(t, apierr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPriority(t *testing.T) {
	for _, value := range []string{"rendah", "sedang", "tinggi"} {
		priority, err := NewPriority(value)
		require.NoError(t, err)
		assert.Equal(t, value, string(priority))
	}

	_, err := NewPriority("urgent")
	assert.True(t, apierr.IsValidation(err))
}
