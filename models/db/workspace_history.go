package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"juris-tools-backend/models"
)

// WorkspaceHistory - журнал переходов между фазами
type WorkspaceHistory struct {
	BaseSpaceModel
	WorkspaceID string       `gorm:"type:varchar(36);index"`
	UserID      string       `gorm:"type:varchar(36)"`
	Changes     PhaseChanges `gorm:"type:jsonb"`
}

type PhaseChanges struct {
	OldPhase models.WorkspacePhase `json:"old_phase"`
	NewPhase models.WorkspacePhase `json:"new_phase"`
	Reason   string                `json:"reason,omitempty"` // причина возврата на доработку
}

func (j PhaseChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *PhaseChanges) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
