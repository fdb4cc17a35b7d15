package workspacehistoryhandler

import (
	"juris-tools-backend/db"
	workspacehistorystore "juris-tools-backend/lib/workspace-history/store"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
)

type Provider interface {
	List(spaceID, workspaceID string) (list []workspaceapimodels.HistoryView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: workspacehistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store workspacehistorystore.Provider
}

func (i impl) List(spaceID, workspaceID string) ([]workspaceapimodels.HistoryView, error) {
	list, err := i.store.List(spaceID, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]workspaceapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, workspaceapimodels.HistoryConvert(rec))
	}
	return result, nil
}
