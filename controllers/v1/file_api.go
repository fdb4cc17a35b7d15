package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"juris-tools-backend/controllers"
	"juris-tools-backend/helpers"
	filestorage "juris-tools-backend/lib/file-storage"
	"juris-tools-backend/middleware"
	apimodels "juris-tools-backend/models/api"
	dbmodels "juris-tools-backend/models/db"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("file", func(router fiber.Router) {
		router.Post("upload", controller.upload)
		router.Get(":id", controller.download)
	})
}

// @Summary Загрузка файла
// @Tags Файлы
// @Description Загрузка файла в хранилище, идентификатор затем привязывается к документу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"Файл"
// @Success 200 {object} apimodels.Response{data=filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/file/upload [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при чтении файла")
	}

	info := dbmodels.UploadFileInfo{
		SpaceID:     middleware.GetUserSpace(ctx),
		FileName:    file.Filename,
		ContentType: helpers.GetFileContentType(file),
		Size:        int64(len(fileBody)),
	}
	result, err := filestorage.Instance.Upload(ctx.UserContext(), info, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Скачивание файла
// @Tags Файлы
// @Description Скачивание файла из хранилища
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/file/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	body, file, err := filestorage.Instance.GetFile(ctx.UserContext(), spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла")
	}
	if file != nil && file.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, file.ContentType)
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	}
	return ctx.Send(body)
}
