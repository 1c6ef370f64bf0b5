package models

import "time"

// AuditFields records who created and last modified a row, and when.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
	CreatedBy *int      `json:"createdBy" gorm:"column:created_by"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
	UpdatedBy *int      `json:"updatedBy" gorm:"column:updated_by"`
}

// Stamp sets both actors on a new row.
func (a *AuditFields) Stamp(actorID int) {
	if actorID <= 0 {
		return
	}
	a.CreatedBy = &actorID
	a.UpdatedBy = &actorID
}
