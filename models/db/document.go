package dbmodels

import (
	"juris-tools-backend/models"
)

// Document - артефакт, приложенный к рабочей области.
// FileID пустой, пока загрузка файла не завершена (запись-заглушка).
// История версий только дополняется: замененные минуты помечаются
// IsSuperseded и никогда не удаляются.
type Document struct {
	BaseSpaceModel
	WorkspaceID  string `gorm:"type:varchar(36);index"`
	Title        string `gorm:"type:varchar(255)"`
	FileID       *string
	FileSize     int64
	ContentType  string                `gorm:"type:varchar(255)"`
	IsPrincipal  bool                  // основная минута
	IsSuperseded bool                  // замененная версия
	OriginPhase  models.WorkspacePhase `gorm:"type:varchar(20)"` // фаза, в которой документ добавлен
	UploadedBy   string                `gorm:"type:varchar(36)"`
}

func (d Document) IsPending() bool {
	return d.FileID == nil
}

// IsActivePrincipal - текущая (не замененная) основная минута
func (d Document) IsActivePrincipal() bool {
	return d.IsPrincipal && !d.IsSuperseded
}
