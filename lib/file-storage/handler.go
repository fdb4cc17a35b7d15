package filestorage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	filesdbstorage "juris-tools-backend/lib/file-storage/storage"
	"juris-tools-backend/models"
	filesapimodels "juris-tools-backend/models/api/files"
	dbmodels "juris-tools-backend/models/db"
	s3client "juris-tools-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, info dbmodels.UploadFileInfo, file []byte) (view filesapimodels.FileView, err error)
	GetFile(ctx context.Context, spaceID, fileID string) (body []byte, view *filesapimodels.FileView, err error)
}

var Instance Provider

func NewHandler(s3 s3client.Provider) {
	Instance = impl{
		store: filesdbstorage.NewInstance(db.DB),
		s3:    s3,
	}
}

type impl struct {
	store filesdbstorage.Provider
	s3    s3client.Provider
}

// Upload - двухшаговый протокол: сначала байты в хранилище,
// затем регистрация метаданных. Осиротевший объект при сбое
// регистрации безопасен - повторная загрузка создаст новый ключ.
func (i impl) Upload(ctx context.Context, info dbmodels.UploadFileInfo, file []byte) (filesapimodels.FileView, error) {
	logger := log.
		WithField("space_id", info.SpaceID).
		WithField("file_name", info.FileName)
	fileID := uuid.NewString()
	objectName := getObjectName(info.SpaceID, fileID)
	if err := i.s3.MakeBucket(ctx); err != nil {
		logger.WithError(err).Error("ошибка создания бакета")
		return filesapimodels.FileView{}, errors.Wrap(err, "хранилище файлов недоступно")
	}
	err := i.s3.PutObject(ctx, objectName, bytes.NewReader(file), info.Size, info.ContentType)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла в хранилище")
		return filesapimodels.FileView{}, errors.Wrap(err, "хранилище файлов недоступно")
	}
	rec := dbmodels.FileStorage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			BaseModel: dbmodels.BaseModel{ID: fileID},
			SpaceID:   info.SpaceID,
		},
		Name:        info.FileName,
		ContentType: info.ContentType,
		Size:        info.Size,
	}
	if _, err = i.store.SaveFile(rec); err != nil {
		logger.WithError(err).Error("файл загружен, но регистрация метаданных не удалась")
		return filesapimodels.FileView{}, errors.Wrap(err, "ошибка регистрации файла")
	}
	return rec.ToModel(), nil
}

func (i impl) GetFile(ctx context.Context, spaceID, fileID string) ([]byte, *filesapimodels.FileView, error) {
	rec, err := i.store.GetByID(spaceID, fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.ErrRecNotFound
	}
	body, err := i.s3.GetObject(ctx, getObjectName(spaceID, fileID))
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	view := rec.ToModel()
	return body, &view, nil
}

func getObjectName(spaceID, fileID string) string {
	return fmt.Sprintf("%s/%s", spaceID, fileID)
}
