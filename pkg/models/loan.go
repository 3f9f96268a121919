package models

import "time"

type FacilityItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Loan struct {
	ID           string         `json:"id"`
	BorrowerID   string         `json:"borrowerId"`
	BorrowerName string         `json:"borrowerName"`
	RoomID       string         `json:"roomId,omitempty"`
	RoomName     string         `json:"roomName,omitempty"`
	Facilities   []FacilityItem `json:"facilities"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	Purpose      string         `json:"purpose"`
	AcademicYear string         `json:"academicYear"`
	Semester     string         `json:"semester"`
	Status       string         `json:"status"`
	ApprovedBy   string         `json:"approvedBy,omitempty"`
	ReturnedAt   *time.Time     `json:"returnedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt,omitempty"`
}

// HasItems reports whether the loan references anything that can be handed back.
func (l *Loan) HasItems() bool {
	return l.RoomID != "" || len(l.Facilities) > 0
}
