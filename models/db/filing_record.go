package dbmodels

import (
	"time"
)

// FilingRecord - данные протоколирования в суде, не более одной на рабочую область.
// Полная запись (номер + время подачи) - условие перехода filing -> closed.
type FilingRecord struct {
	BaseSpaceModel
	WorkspaceID  string `gorm:"type:varchar(36);uniqueIndex"`
	FilingSystem string `gorm:"type:varchar(100)"` // ПЖЕ, ЕСАЖ и тд
	FilingNumber string `gorm:"type:varchar(100)"`
	FiledAt      *time.Time
	ReceiptID    *string // ссылка на файл квитанции
}

func (f FilingRecord) IsComplete() bool {
	return f.FilingNumber != "" && f.FiledAt != nil
}
