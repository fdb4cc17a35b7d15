package approvalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"juris-tools-backend/models"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.ApprovalRequest, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	List(spaceID, workspaceID string) (list []dbmodels.ApprovalRequest, err error)
	CountByStatus(spaceID, workspaceID string, status models.ApprovalStatus) (count int64, err error)
	CountAll(spaceID, workspaceID string) (count int64, err error)
	MaxRound(spaceID, workspaceID string) (round int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
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
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(spaceID, workspaceID string) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Order("round ASC, created_at ASC").
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

func (i impl) CountByStatus(spaceID, workspaceID string, status models.ApprovalStatus) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Where("status = ?", status).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) CountAll(spaceID, workspaceID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) MaxRound(spaceID, workspaceID string) (round int, err error) {
	var maxRound *int
	err = i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
		Select("MAX(round)").
		Scan(&maxRound).
		Error
	if err != nil {
		return 0, err
	}
	if maxRound == nil {
		return 0, nil
	}
	return *maxRound, nil
}
