package dbmodels

import filesapimodels "juris-tools-backend/models/api/files"

// FileStorage - метаданные файла в S3, ключ объекта = ID записи
type FileStorage struct {
	BaseSpaceModel
	Name        string
	ContentType string
	Size        int64
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		SpaceID:     f.SpaceID,
		ContentType: f.ContentType,
		Size:        f.Size,
	}
}

type UploadFileInfo struct {
	SpaceID     string
	FileName    string
	ContentType string
	Size        int64
}
