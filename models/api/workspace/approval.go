package workspaceapimodels

import (
	"time"

	"juris-tools-backend/models"
	dbmodels "juris-tools-backend/models/db"

	"github.com/pkg/errors"
)

type ApprovalRequestData struct {
	ApproverID    string `json:"approver_id"`
	ApproverEmail string `json:"approver_email"` // для уведомления, необязательно
}

func (a ApprovalRequestData) Validate() error {
	if a.ApproverID == "" {
		return errors.New("отсутсвует идентификатор согласующего")
	}
	return nil
}

type ApprovalDecisionData struct {
	Status   models.ApprovalStatus `json:"status"`
	Feedback string                `json:"feedback"`
}

func (a ApprovalDecisionData) Validate() error {
	if !a.Status.IsDecision() {
		return errors.Errorf("недопустимый статус решения: %v", a.Status)
	}
	return nil
}

type ApprovalView struct {
	ID          string                `json:"id"`
	Round       int                   `json:"round"`
	ApproverID  string                `json:"approver_id"`
	Status      models.ApprovalStatus `json:"status"`
	Feedback    string                `json:"feedback"`
	RequestedAt time.Time             `json:"requested_at"`
	DecidedAt   *time.Time            `json:"decided_at"`
}

func ApprovalConvert(rec dbmodels.ApprovalRequest) ApprovalView {
	return ApprovalView{
		ID:          rec.ID,
		Round:       rec.Round,
		ApproverID:  rec.ApproverID,
		Status:      rec.Status,
		Feedback:    rec.Feedback,
		RequestedAt: rec.RequestedAt,
		DecidedAt:   rec.DecidedAt,
	}
}
