package models

import "time"

type DamageReport struct {
	ID           string    `json:"id"`
	AssetID      string    `json:"assetId"`
	AssetName    string    `json:"assetName"`
	ReportedBy   string    `json:"reportedBy"`
	ReporterName string    `json:"reporterName"`
	Description  string    `json:"description"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}
