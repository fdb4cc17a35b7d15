package workspaceapimodels

import (
	"time"

	dbmodels "juris-tools-backend/models/db"

	"github.com/pkg/errors"
)

type FilingRecordData struct {
	FilingSystem string     `json:"filing_system"`
	FilingNumber string     `json:"filing_number"`
	FiledAt      *time.Time `json:"filed_at"`
	ReceiptID    *string    `json:"receipt_id"`
}

func (f FilingRecordData) Validate() error {
	if f.FilingSystem == "" {
		return errors.New("отсутсвует идентификатор судебной системы")
	}
	return nil
}

type FilingRecordView struct {
	ID           string     `json:"id"`
	FilingSystem string     `json:"filing_system"`
	FilingNumber string     `json:"filing_number"`
	FiledAt      *time.Time `json:"filed_at"`
	ReceiptID    *string    `json:"receipt_id"`
	IsComplete   bool       `json:"is_complete"`
}

func FilingRecordConvert(rec dbmodels.FilingRecord) FilingRecordView {
	return FilingRecordView{
		ID:           rec.ID,
		FilingSystem: rec.FilingSystem,
		FilingNumber: rec.FilingNumber,
		FiledAt:      rec.FiledAt,
		ReceiptID:    rec.ReceiptID,
		IsComplete:   rec.IsComplete(),
	}
}
