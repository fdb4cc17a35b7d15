package dbmodels

import (
	"time"

	"juris-tools-backend/models"
)

// Workspace - рабочая область по судебному сроку (празо).
// Создается лениво при первом открытии, никогда не удаляется.
// Не более одной области на празо: уникальный индекс по (space_id, deadline_id)
// создается в миграции, тк SpaceID живет во встроенной BaseSpaceModel.
type Workspace struct {
	BaseSpaceModel
	DeadlineID     string                `gorm:"type:varchar(36)"`
	Phase          models.WorkspacePhase `gorm:"type:varchar(20)"`
	Locked         bool
	Version        int64 // счетчик для оптимистичной блокировки
	PhaseChangedAt *time.Time

	Documents      []Document        `gorm:"foreignKey:WorkspaceID"`
	ChecklistItems []ChecklistItem   `gorm:"foreignKey:WorkspaceID"`
	Approvals      []ApprovalRequest `gorm:"foreignKey:WorkspaceID"`
	FilingRecord   *FilingRecord     `gorm:"foreignKey:WorkspaceID"`
	Comments       []Comment         `gorm:"foreignKey:WorkspaceID"`
}
