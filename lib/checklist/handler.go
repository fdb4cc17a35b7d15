package checklisthandler

import (
	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	checkliststore "juris-tools-backend/lib/checklist/store"
	"juris-tools-backend/lib/permission"
	workspacestore "juris-tools-backend/lib/workspace/store"
	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Toggle(spaceID, workspaceID, itemID string, checked bool) error
	AddItem(spaceID, workspaceID string, data workspaceapimodels.ChecklistItemData) (id string, err error)
	IsSatisfied(spaceID, workspaceID string) (ok bool, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   checkliststore.NewInstance(db.DB),
		wsStore: workspacestore.NewInstance(db.DB),
	}
}

type impl struct {
	store   checkliststore.Provider
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

func (i impl) Toggle(spaceID, workspaceID, itemID string, checked bool) error {
	ws, err := i.getWorkspace(spaceID, workspaceID)
	if err != nil {
		return err
	}
	capability := permission.Resolve(ws.Phase, ws.Phase, nil)
	if !capability.AllowMutate() {
		return models.ErrReadOnly
	}
	item, err := i.store.GetByID(spaceID, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.WorkspaceID != workspaceID {
		return models.ErrRecNotFound
	}
	if err = i.wsStore.Touch(spaceID, workspaceID, ws.Version); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"checked": checked,
	}
	return i.store.Update(spaceID, itemID, updMap)
}

func (i impl) AddItem(spaceID, workspaceID string, data workspaceapimodels.ChecklistItemData) (string, error) {
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
	rec := dbmodels.ChecklistItem{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		WorkspaceID:    workspaceID,
		Title:          data.Title,
		Category:       data.Category,
		Blocking:       data.Blocking,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		i.GetLogger(spaceID, workspaceID).WithError(err).Error("ошибка добавления пункта чеклиста")
		return "", err
	}
	return id, nil
}

// IsSatisfied - нет блокирующих неотмеченных пунктов,
// единственное условие чеклиста для перехода draft -> review
func (i impl) IsSatisfied(spaceID, workspaceID string) (bool, error) {
	count, err := i.store.CountBlockingUnchecked(spaceID, workspaceID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
