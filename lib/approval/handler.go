package approvalhandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	approvalstore "juris-tools-backend/lib/approval/store"
	"juris-tools-backend/lib/smtp"
	workspacestore "juris-tools-backend/lib/workspace/store"
	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Request(spaceID, workspaceID, userID string, data workspaceapimodels.ApprovalRequestData) (id string, err error)
	Decide(spaceID, workspaceID, approvalID string, data workspaceapimodels.ApprovalDecisionData) error
	AllResolved(spaceID, workspaceID string) (ok bool, err error)
}

var Instance Provider

func NewHandler(notifyFrom string) {
	Instance = impl{
		store:      approvalstore.NewInstance(db.DB),
		wsStore:    workspacestore.NewInstance(db.DB),
		notifyFrom: notifyFrom,
	}
}

type impl struct {
	store      approvalstore.Provider
	wsStore    workspacestore.Provider
	notifyFrom string
}

func (i impl) GetLogger(spaceID, workspaceID string) *log.Entry {
	logger := log.
		WithField("space_id", spaceID).
		WithField("workspace_id", workspaceID)
	return logger
}

func (i impl) getWorkspace(spaceID, workspaceID string) (*dbmodels.Workspace, error) {
	rec, err := i.wsStore.GetByID(spaceID, workspaceID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrRecNotFound
	}
	if rec.Locked {
		return nil, models.ErrWorkspaceLocked
	}
	return rec, nil
}

// Request - новая задача согласования, только в фазе approval.
// Номер раунда растет в пределах рабочей области.
func (i impl) Request(spaceID, workspaceID, userID string, data workspaceapimodels.ApprovalRequestData) (string, error) {
	logger := i.GetLogger(spaceID, workspaceID).
		WithField("approver_id", data.ApproverID)
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return "", err
	}
	if ws.Phase != models.PhaseApproval {
		return "", models.ErrPermissionDenied
	}
	round, err := i.store.MaxRound(spaceID, workspaceID)
	if err != nil {
		return "", err
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return "", err
	}
	rec := dbmodels.ApprovalRequest{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		WorkspaceID:    workspaceID,
		Round:          round + 1,
		ApproverID:     data.ApproverID,
		Status:         models.AStatusPending,
		RequestedAt:    time.Now(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания задачи согласования")
		return "", err
	}
	i.notifyApprover(logger, data.ApproverEmail, workspaceID)
	logger.Info("запрошено согласование")
	return id, nil
}

// Decide - решение терминально, повторное изменение запрещено.
// При отклонении комментарий обязателен.
func (i impl) Decide(spaceID, workspaceID, approvalID string, data workspaceapimodels.ApprovalDecisionData) error {
	logger := i.GetLogger(spaceID, workspaceID).
		WithField("approval_id", approvalID).
		WithField("status", data.Status)
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(spaceID, approvalID)
	if err != nil {
		return err
	}
	if rec == nil || rec.WorkspaceID != workspaceID {
		return models.ErrRecNotFound
	}
	if rec.Status != models.AStatusPending {
		return models.ErrAlreadyDecided
	}
	if data.Status == models.AStatusRejected && data.Feedback == "" {
		return models.ErrMissingFeedback
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":     data.Status,
		"feedback":   data.Feedback,
		"decided_at": now,
	}
	if err = i.store.Update(spaceID, approvalID, updMap); err != nil {
		logger.WithError(err).Error("ошибка сохранения решения по согласованию")
		return err
	}
	logger.Info("решение по согласованию вынесено")
	return nil
}

// AllResolved - все задачи согласования без статуса pending,
// единственное условие для перехода approval -> filing
func (i impl) AllResolved(spaceID, workspaceID string) (bool, error) {
	pending, err := i.store.CountByStatus(spaceID, workspaceID, models.AStatusPending)
	if err != nil {
		return false, err
	}
	return pending == 0, nil
}

// уведомление согласующего, ошибки не блокируют операцию
func (i impl) notifyApprover(logger *log.Entry, email, workspaceID string) {
	if email == "" || smtp.Instance == nil {
		return
	}
	message := "Вам назначена задача согласования минуты, рабочая область: " + workspaceID
	if err := smtp.Instance.SendEMail(i.notifyFrom, email, message, "Запрошено согласование"); err != nil {
		logger.WithError(err).Error("не удалось отправить уведомление согласующему")
	}
}
