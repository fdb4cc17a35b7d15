package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"juris-tools-backend/controllers"
	approvalhandler "juris-tools-backend/lib/approval"
	checklisthandler "juris-tools-backend/lib/checklist"
	commenthandler "juris-tools-backend/lib/comment"
	documenthandler "juris-tools-backend/lib/document"
	filinghandler "juris-tools-backend/lib/filing"
	workspacehandler "juris-tools-backend/lib/workspace"
	workspacehistoryhandler "juris-tools-backend/lib/workspace-history"
	"juris-tools-backend/middleware"
	apimodels "juris-tools-backend/models/api"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
)

type workspaceApiController struct {
	controllers.BaseAPIController
}

func InitWorkspaceApiRouters(app *fiber.App) {
	controller := workspaceApiController{}
	app.Route("deadline/:deadlineId/workspace", func(router fiber.Router) {
		router.Post("", controller.getOrCreate)
	})
	app.Route("workspace/:id", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Get("stats", controller.stats)
		router.Get("history", controller.history)
		router.Put("phase", controller.changePhase)
		router.Put("lock", controller.toggleLock)
		router.Post("document", controller.addDocument)
		router.Put("document/replace_minuta", controller.replaceMinuta)
		router.Route("document/:docId", func(docRoute fiber.Router) {
			docRoute.Put("", controller.updateDocument)
			docRoute.Delete("", controller.removeDocument)
		})
		router.Post("checklist", controller.addChecklistItem)
		router.Put("checklist/:itemId", controller.toggleChecklist)
		router.Post("approval", controller.requestApproval)
		router.Put("approval/:approvalId", controller.decideApproval)
		router.Post("protocol", controller.registerProtocol)
		router.Post("comment", controller.addComment)
		router.Get("comment", controller.listComments)
	})
}

// @Summary Открытие рабочей области празо
// @Tags Рабочая область
// @Description Идемпотентное создание при первом открытии
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   deadlineId          path    string  true    "deadline ID"
// @Success 200 {object} apimodels.Response{data=workspaceapimodels.WorkspaceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/deadline/{deadlineId}/workspace [post]
func (c *workspaceApiController) getOrCreate(ctx *fiber.Ctx) error {
	deadlineID, err := c.GetIDByKey(ctx, "deadlineId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := workspacehandler.Instance.GetOrCreate(spaceID, deadlineID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка открытия рабочей области")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Получение рабочей области
// @Tags Рабочая область
// @Description Рабочая область с документами, чеклистом, согласованиями и комментариями
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=workspaceapimodels.WorkspaceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id} [get]
func (c *workspaceApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	result, err := workspacehandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения рабочей области")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Статистика рабочей области
// @Tags Рабочая область
// @Description Производные счетчики, пересчитываются по записям
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=workspaceapimodels.StatsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/stats [get]
func (c *workspaceApiController) stats(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	result, err := workspacehandler.Instance.Stats(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики рабочей области")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Журнал смены фаз
// @Tags Рабочая область
// @Description Журнал переходов между фазами
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]workspaceapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/history [get]
func (c *workspaceApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	result, err := workspacehistoryhandler.Instance.List(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала смены фаз")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Смена фазы
// @Tags Рабочая область
// @Description Запрос перехода, условия проверяются по свежему состоянию
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.PhaseChangeData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=workspaceapimodels.WorkspaceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/phase [put]
func (c *workspaceApiController) changePhase(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.PhaseChangeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := workspacehandler.Instance.ChangePhase(spaceID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены фазы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Ручная блокировка
// @Tags Рабочая область
// @Description Блокировка/разблокировка, доступна в любой фазе
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.LockData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=workspaceapimodels.WorkspaceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/lock [put]
func (c *workspaceApiController) toggleLock(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.LockData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := workspacehandler.Instance.ToggleLock(spaceID, id, userID, payload.Locked)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения блокировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Добавление документа
// @Tags Документы
// @Description Добавление документа, фаза добавления фиксируется
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.DocumentData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/document [post]
func (c *workspaceApiController) addDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.DocumentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	docID, err := documenthandler.Instance.Add(spaceID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(docID))
}

// @Summary Замена основной минуты
// @Tags Документы
// @Description Прежняя версия помечается замененной и сохраняется
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.DocumentData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/document/replace_minuta [put]
func (c *workspaceApiController) replaceMinuta(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.DocumentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	docID, err := documenthandler.Instance.ReplacePrincipal(spaceID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка замены основной минуты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(docID))
}

// @Summary Переименование документа
// @Tags Документы
// @Description Меняется только название
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.DocumentRenameData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Param   docId          		path    string  true    "document ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/document/{docId} [put]
func (c *workspaceApiController) updateDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docID, err := c.GetIDByKey(ctx, "docId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.DocumentRenameData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = documenthandler.Instance.Rename(spaceID, id, docID, payload.Title)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переименования документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление документа
// @Tags Документы
// @Description Доступно только для документов текущей фазы, замененные версии неудаляемы
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   docId          		path    string  true    "document ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/document/{docId} [delete]
func (c *workspaceApiController) removeDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docID, err := c.GetIDByKey(ctx, "docId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = documenthandler.Instance.Remove(spaceID, id, docID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление пункта чеклиста
// @Tags Чеклист
// @Description Добавление пункта чеклиста
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.ChecklistItemData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/checklist [post]
func (c *workspaceApiController) addChecklistItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.ChecklistItemData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	itemID, err := checklisthandler.Instance.AddItem(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления пункта чеклиста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(itemID))
}

// @Summary Отметка пункта чеклиста
// @Tags Чеклист
// @Description Отметка/снятие отметки пункта
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.ChecklistToggleData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Param   itemId          	path    string  true    "item ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/checklist/{itemId} [put]
func (c *workspaceApiController) toggleChecklist(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	itemID, err := c.GetIDByKey(ctx, "itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.ChecklistToggleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = checklisthandler.Instance.Toggle(spaceID, id, itemID, payload.Checked)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки пункта чеклиста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Запрос согласования
// @Tags Согласование
// @Description Новая задача согласования, только в фазе approval
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.ApprovalRequestData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/approval [post]
func (c *workspaceApiController) requestApproval(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.ApprovalRequestData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	approvalID, err := approvalhandler.Instance.Request(spaceID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запроса согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(approvalID))
}

// @Summary Решение по согласованию
// @Tags Согласование
// @Description Решение терминально, при отклонении обязателен комментарий
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Param   approvalId          path    string  true    "approval ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/approval/{approvalId} [put]
func (c *workspaceApiController) decideApproval(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	approvalID, err := c.GetIDByKey(ctx, "approvalId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.ApprovalDecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = approvalhandler.Instance.Decide(spaceID, id, approvalID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка вынесения решения по согласованию")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Регистрация протокола
// @Tags Протокол
// @Description Регистрация данных протоколирования, только в фазе filing
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.FilingRecordData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=workspaceapimodels.FilingRecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/protocol [post]
func (c *workspaceApiController) registerProtocol(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.FilingRecordData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := filinghandler.Instance.Register(spaceID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации протокола")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Добавление комментария
// @Tags Комментарии
// @Description Комментарии только добавляются и на переходы не влияют
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body 				body	workspaceapimodels.CommentData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/comment [post]
func (c *workspaceApiController) addComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload workspaceapimodels.CommentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	commentID, err := commenthandler.Instance.Add(spaceID, id, userID, payload.Text)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(commentID))
}

// @Summary Список комментариев
// @Tags Комментарии
// @Description Комментарии в порядке добавления
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]workspaceapimodels.CommentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/workspace/{id}/comment [get]
func (c *workspaceApiController) listComments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	result, err := commenthandler.Instance.List(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения комментариев")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
