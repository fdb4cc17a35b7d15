package commentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Comment) (id string, err error)
	List(spaceID, workspaceID string) (list []dbmodels.Comment, err error)
	Count(spaceID, workspaceID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Comment) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(spaceID, workspaceID string) (list []dbmodels.Comment, err error) {
	list = []dbmodels.Comment{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
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

func (i impl) Count(spaceID, workspaceID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Comment{}).
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
