package commenthandler

import (
	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	commentstore "juris-tools-backend/lib/comment/store"
	workspacestore "juris-tools-backend/lib/workspace/store"
	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Add(spaceID, workspaceID, userID, text string) (id string, err error)
	List(spaceID, workspaceID string) (list []workspaceapimodels.CommentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   commentstore.NewInstance(db.DB),
		wsStore: workspacestore.NewInstance(db.DB),
	}
}

type impl struct {
	store   commentstore.Provider
	wsStore workspacestore.Provider
}

// Add - комментарии только добавляются и на переходы не влияют,
// допустимы в любой фазе, кроме ручной блокировки
func (i impl) Add(spaceID, workspaceID, userID, text string) (string, error) {
	ws, err := i.wsStore.GetByID(spaceID, workspaceID)
	if err != nil {
		return "", err
	}
	if ws == nil {
		return "", models.ErrRecNotFound
	}
	if ws.Locked {
		return "", models.ErrWorkspaceLocked
	}
	rec := dbmodels.Comment{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		WorkspaceID:    workspaceID,
		AuthorID:       userID,
		Text:           text,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("workspace_id", workspaceID).
			WithError(err).
			Error("ошибка добавления комментария")
		return "", err
	}
	return id, nil
}

func (i impl) List(spaceID, workspaceID string) ([]workspaceapimodels.CommentView, error) {
	list, err := i.store.List(spaceID, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]workspaceapimodels.CommentView, 0, len(list))
	for _, rec := range list {
		result = append(result, workspaceapimodels.CommentConvert(rec))
	}
	return result, nil
}
