package workspaceapimodels

import (
	"time"

	"juris-tools-backend/lib/permission"
	"juris-tools-backend/models"
	dbmodels "juris-tools-backend/models/db"

	"github.com/pkg/errors"
)

type DocumentData struct {
	Title       string  `json:"title"`
	FileID      *string `json:"file_id"` // пустой для заглушки до завершения загрузки
	FileSize    int64   `json:"file_size"`
	ContentType string  `json:"content_type"`
	AsPrincipal bool    `json:"as_principal"`
}

func (d DocumentData) Validate() error {
	if d.Title == "" {
		return errors.New("отсутсвует название документа")
	}
	return nil
}

type DocumentRenameData struct {
	Title string `json:"title"`
}

func (d DocumentRenameData) Validate() error {
	if d.Title == "" {
		return errors.New("отсутсвует название документа")
	}
	return nil
}

type DocumentView struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	FileID       *string               `json:"file_id"`
	FileSize     int64                 `json:"file_size"`
	ContentType  string                `json:"content_type"`
	IsPrincipal  bool                  `json:"is_principal"`
	IsSuperseded bool                  `json:"is_superseded"`
	IsPending    bool                  `json:"is_pending"`
	OriginPhase  models.WorkspacePhase `json:"origin_phase"`
	UploadedBy   string                `json:"uploaded_by"`
	Capability   models.EditCapability `json:"capability"`
	CreatedAt    time.Time             `json:"created_at"`
}

func DocumentConvert(rec dbmodels.Document, currentPhase models.WorkspacePhase) DocumentView {
	return DocumentView{
		ID:           rec.ID,
		Title:        rec.Title,
		FileID:       rec.FileID,
		FileSize:     rec.FileSize,
		ContentType:  rec.ContentType,
		IsPrincipal:  rec.IsPrincipal,
		IsSuperseded: rec.IsSuperseded,
		IsPending:    rec.IsPending(),
		OriginPhase:  rec.OriginPhase,
		UploadedBy:   rec.UploadedBy,
		Capability:   permission.Resolve(currentPhase, currentPhase, &rec.OriginPhase),
		CreatedAt:    rec.CreatedAt,
	}
}
