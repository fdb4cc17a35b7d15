package workspacehistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkspaceHistory) (id string, err error)
	List(spaceID, workspaceID string) (list []dbmodels.WorkspaceHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkspaceHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(spaceID, workspaceID string) (list []dbmodels.WorkspaceHistory, err error) {
	list = []dbmodels.WorkspaceHistory{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
