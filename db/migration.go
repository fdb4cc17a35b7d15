package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "juris-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Workspace{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Workspace")
	}
	// идемпотентность getOrCreate: не более одной рабочей области на празо
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_workspace_deadline ON workspaces (space_id, deadline_id)").Error; err != nil {
		return errors.Wrap(err, "ошибка создания уникального индекса рабочих областей")
	}
	if err := DB.AutoMigrate(&dbmodels.Document{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Document")
	}
	if err := DB.AutoMigrate(&dbmodels.ChecklistItem{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ChecklistItem")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.FilingRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FilingRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.Comment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Comment")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkspaceHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkspaceHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
