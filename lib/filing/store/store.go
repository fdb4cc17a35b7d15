package filingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.FilingRecord) (id string, err error)
	GetByWorkspace(spaceID, workspaceID string) (rec *dbmodels.FilingRecord, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save - создает или перезаписывает черновые значения записи протокола
func (i impl) Save(rec dbmodels.FilingRecord) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByWorkspace(spaceID, workspaceID string) (*dbmodels.FilingRecord, error) {
	rec := dbmodels.FilingRecord{}
	err := i.db.
		Where("space_id = ?", spaceID).
		Where("workspace_id = ?", workspaceID).
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
