package documenthandler

import (
	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	documentstore "juris-tools-backend/lib/document/store"
	"juris-tools-backend/lib/permission"
	workspacestore "juris-tools-backend/lib/workspace/store"
	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Add(spaceID, workspaceID, userID string, data workspaceapimodels.DocumentData) (id string, err error)
	ReplacePrincipal(spaceID, workspaceID, userID string, data workspaceapimodels.DocumentData) (id string, err error)
	Remove(spaceID, workspaceID, documentID string) error
	Rename(spaceID, workspaceID, documentID, title string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   documentstore.NewInstance(db.DB),
		wsStore: workspacestore.NewInstance(db.DB),
	}
}

type impl struct {
	store   documentstore.Provider
	wsStore workspacestore.Provider
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

// Add - добавляет документ, фаза добавления фиксируется как текущая.
// Документ без file_id остается заглушкой до завершения загрузки.
func (i impl) Add(spaceID, workspaceID, userID string, data workspaceapimodels.DocumentData) (string, error) {
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return "", err
	}
	capability := permission.Resolve(ws.Phase, ws.Phase, nil)
	if !capability.AllowMutate() {
		return "", models.ErrPermissionDenied
	}
	if data.AsPrincipal {
		principal, err := i.store.GetActivePrincipal(spaceID, workspaceID)
		if err != nil {
			return "", err
		}
		if principal != nil {
			return "", models.ErrPrincipalAlreadyExists
		}
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return "", err
	}
	rec := dbmodels.Document{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		WorkspaceID:    workspaceID,
		Title:          data.Title,
		FileID:         data.FileID,
		FileSize:       data.FileSize,
		ContentType:    data.ContentType,
		IsPrincipal:    data.AsPrincipal,
		OriginPhase:    ws.Phase,
		UploadedBy:     userID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		i.GetLogger(spaceID, workspaceID).WithError(err).Error("ошибка добавления документа")
		return "", err
	}
	return id, nil
}

// ReplacePrincipal - замена основной минуты: прежняя версия помечается
// замененной и сохраняется, история только растет
func (i impl) ReplacePrincipal(spaceID, workspaceID, userID string, data workspaceapimodels.DocumentData) (string, error) {
	logger := i.GetLogger(spaceID, workspaceID)
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return "", err
	}
	capability := permission.Resolve(ws.Phase, ws.Phase, nil)
	if !capability.AllowMutate() {
		return "", models.ErrPermissionDenied
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return "", err
	}
	principal, err := i.store.GetActivePrincipal(spaceID, workspaceID)
	if err != nil {
		return "", err
	}
	if principal != nil {
		updMap := map[string]interface{}{
			"is_superseded": true,
		}
		if err = i.store.Update(spaceID, principal.ID, updMap); err != nil {
			logger.WithError(err).Error("ошибка пометки прежней минуты замененной")
			return "", err
		}
	}
	rec := dbmodels.Document{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		WorkspaceID:    workspaceID,
		Title:          data.Title,
		FileID:         data.FileID,
		FileSize:       data.FileSize,
		ContentType:    data.ContentType,
		IsPrincipal:    true,
		OriginPhase:    ws.Phase,
		UploadedBy:     userID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка замены основной минуты")
		return "", err
	}
	logger.Info("основная минута заменена")
	return id, nil
}

// Remove - удаление доступно только для документов текущей фазы,
// замененные версии неудаляемы
func (i impl) Remove(spaceID, workspaceID, documentID string) error {
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return err
	}
	doc, err := i.store.GetByID(spaceID, documentID)
	if err != nil {
		return err
	}
	if doc == nil || doc.WorkspaceID != workspaceID {
		return models.ErrRecNotFound
	}
	if doc.IsSuperseded {
		return models.ErrPermissionDenied
	}
	capability := permission.Resolve(ws.Phase, ws.Phase, &doc.OriginPhase)
	if capability != models.CapabilityFullEdit {
		return models.ErrPermissionDenied
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return err
	}
	return i.store.Delete(spaceID, documentID)
}

// Rename - меняется только название
func (i impl) Rename(spaceID, workspaceID, documentID, title string) error {
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return err
	}
	doc, err := i.store.GetByID(spaceID, documentID)
	if err != nil {
		return err
	}
	if doc == nil || doc.WorkspaceID != workspaceID {
		return models.ErrRecNotFound
	}
	capability := permission.Resolve(ws.Phase, ws.Phase, &doc.OriginPhase)
	if capability != models.CapabilityFullEdit {
		return models.ErrPermissionDenied
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title": title,
	}
	return i.store.Update(spaceID, documentID, updMap)
}
