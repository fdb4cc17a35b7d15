package workspacestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"juris-tools-backend/models"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Workspace) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.Workspace, err error)
	GetFullByID(spaceID, id string) (rec *dbmodels.Workspace, err error)
	GetByDeadline(spaceID, deadlineID string) (rec *dbmodels.Workspace, err error)
	Update(spaceID, id string, version int64, updMap map[string]interface{}) error
	Touch(spaceID, id string, version int64) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Workspace) (id string, err error) {
	err = i.db.
		Omit("Documents", "ChecklistItems", "Approvals", "FilingRecord", "Comments").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Workspace, error) {
	rec := dbmodels.Workspace{}
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

func (i impl) GetFullByID(spaceID, id string) (*dbmodels.Workspace, error) {
	rec := dbmodels.Workspace{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("documents.created_at ASC")
		}).
		Preload("ChecklistItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("checklist_items.created_at ASC")
		}).
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("approval_requests.round ASC, approval_requests.created_at ASC")
		}).
		Preload("FilingRecord").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
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

func (i impl) GetByDeadline(spaceID, deadlineID string) (*dbmodels.Workspace, error) {
	rec := dbmodels.Workspace{}
	err := i.db.
		Where("deadline_id = ?", deadlineID).
		Where("space_id = ?", spaceID).
		Order("created_at ASC").
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

// Update - условная запись: обновление проходит только если версия
// не изменилась с момента чтения, иначе ErrConcurrentModification
func (i impl) Update(spaceID, id string, version int64, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	updMap["version"] = version + 1
	tx := i.db.
		Model(&dbmodels.Workspace{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("version = ?", version).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrConcurrentModification
	}
	return nil
}

// Touch - поднимает версию рабочей области при мутации зависимых записей,
// фиксируя конфликт параллельных изменений
func (i impl) Touch(spaceID, id string, version int64) error {
	tx := i.db.
		Model(&dbmodels.Workspace{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("version = ?", version).
		Update("version", version+1)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrConcurrentModification
	}
	return nil
}
