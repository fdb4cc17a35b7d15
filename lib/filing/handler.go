package filinghandler

import (
	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	filingstore "juris-tools-backend/lib/filing/store"
	workspacestore "juris-tools-backend/lib/workspace/store"
	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Register(spaceID, workspaceID, userID string, data workspaceapimodels.FilingRecordData) (view workspaceapimodels.FilingRecordView, err error)
	IsComplete(spaceID, workspaceID string) (ok bool, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   filingstore.NewInstance(db.DB),
		wsStore: workspacestore.NewInstance(db.DB),
	}
}

type impl struct {
	store   filingstore.Provider
	wsStore workspacestore.Provider
}

func (i impl) GetLogger(spaceID, workspaceID string) *log.Entry {
	logger := log.
		WithField("space_id", spaceID).
		WithField("workspace_id", workspaceID)
	return logger
}

// Register - регистрация данных протокола, только в фазе filing.
// Черновые значения перезаписываются, после закрытия запись неизменяема.
func (i impl) Register(spaceID, workspaceID, userID string, data workspaceapimodels.FilingRecordData) (workspaceapimodels.FilingRecordView, error) {
	logger := i.GetLogger(spaceID, workspaceID).
		WithField("filing_number", data.FilingNumber)
	ws, err := i.wsStore.GetByID(spaceID, workspaceID)
	if err != nil {
		return workspaceapimodels.FilingRecordView{}, err
	}
	if ws == nil {
		return workspaceapimodels.FilingRecordView{}, models.ErrRecNotFound
	}
	if ws.Locked {
		return workspaceapimodels.FilingRecordView{}, models.ErrWorkspaceLocked
	}
	if ws.Phase == models.PhaseClosed {
		return workspaceapimodels.FilingRecordView{}, models.ErrInvalidTransition
	}
	if ws.Phase != models.PhaseFiling {
		return workspaceapimodels.FilingRecordView{}, models.ErrPermissionDenied
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return workspaceapimodels.FilingRecordView{}, err
	}
	rec, err := i.store.GetByWorkspace(spaceID, workspaceID)
	if err != nil {
		return workspaceapimodels.FilingRecordView{}, err
	}
	if rec == nil {
		rec = &dbmodels.FilingRecord{
			BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
			WorkspaceID:    workspaceID,
		}
	}
	rec.FilingSystem = data.FilingSystem
	rec.FilingNumber = data.FilingNumber
	rec.FiledAt = data.FiledAt
	rec.ReceiptID = data.ReceiptID
	if _, err = i.store.Save(*rec); err != nil {
		logger.WithError(err).Error("ошибка регистрации протокола")
		return workspaceapimodels.FilingRecordView{}, err
	}
	saved, err := i.store.GetByWorkspace(spaceID, workspaceID)
	if err != nil {
		return workspaceapimodels.FilingRecordView{}, err
	}
	logger.Info("протокол зарегистрирован")
	return workspaceapimodels.FilingRecordConvert(*saved), nil
}

// IsComplete - номер и время подачи заполнены,
// единственное условие для перехода filing -> closed
func (i impl) IsComplete(spaceID, workspaceID string) (bool, error) {
	rec, err := i.store.GetByWorkspace(spaceID, workspaceID)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.IsComplete(), nil
}
