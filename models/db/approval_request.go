package dbmodels

import (
	"time"

	"juris-tools-backend/models"
)

// ApprovalRequest - задача согласования, создается только в фазе approval.
// После вынесения решения запись неизменяема.
type ApprovalRequest struct {
	BaseSpaceModel
	WorkspaceID string `gorm:"type:varchar(36);index"`
	Round       int
	ApproverID  string                `gorm:"type:varchar(36)"`
	Status      models.ApprovalStatus `gorm:"type:varchar(30)"`
	Feedback    string
	RequestedAt time.Time
	DecidedAt   *time.Time
}
