package checkliststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ChecklistItem) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.ChecklistItem, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	List(spaceID, workspaceID string) (list []dbmodels.ChecklistItem, err error)
	CountBlockingUnchecked(spaceID, workspaceID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ChecklistItem) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.ChecklistItem, error) {
	rec := dbmodels.ChecklistItem{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.ChecklistItem{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(spaceID, workspaceID string) (list []dbmodels.ChecklistItem, err error) {
	list = []dbmodels.ChecklistItem{}
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

func (i impl) CountBlockingUnchecked(spaceID, workspaceID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.ChecklistItem{}).
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Where("blocking = true").
		Where("checked = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
