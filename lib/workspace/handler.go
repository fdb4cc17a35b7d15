package workspacehandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"juris-tools-backend/db"
	approvalstore "juris-tools-backend/lib/approval/store"
	checkliststore "juris-tools-backend/lib/checklist/store"
	commentstore "juris-tools-backend/lib/comment/store"
	documentstore "juris-tools-backend/lib/document/store"
	filingstore "juris-tools-backend/lib/filing/store"
	workspacehistorystore "juris-tools-backend/lib/workspace-history/store"
	workspacestore "juris-tools-backend/lib/workspace/store"
	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

type Provider interface {
	GetOrCreate(spaceID, deadlineID, userID string) (view workspaceapimodels.WorkspaceView, err error)
	GetByID(spaceID, id string) (view workspaceapimodels.WorkspaceView, err error)
	ChangePhase(spaceID, id, userID string, data workspaceapimodels.PhaseChangeData) (view workspaceapimodels.WorkspaceView, err error)
	ToggleLock(spaceID, id, userID string, locked bool) (view workspaceapimodels.WorkspaceView, err error)
	Stats(spaceID, id string) (stats workspaceapimodels.StatsView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          workspacestore.NewInstance(db.DB),
		documentStore:  documentstore.NewInstance(db.DB),
		checklistStore: checkliststore.NewInstance(db.DB),
		approvalStore:  approvalstore.NewInstance(db.DB),
		filingStore:    filingstore.NewInstance(db.DB),
		commentStore:   commentstore.NewInstance(db.DB),
		historyStore:   workspacehistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store          workspacestore.Provider
	documentStore  documentstore.Provider
	checklistStore checkliststore.Provider
	approvalStore  approvalstore.Provider
	filingStore    filingstore.Provider
	commentStore   commentstore.Provider
	historyStore   workspacehistorystore.Provider
}

func (i impl) GetLogger(spaceID, workspaceID string) *log.Entry {
	logger := log.
		WithField("space_id", spaceID).
		WithField("workspace_id", workspaceID)
	return logger
}

// чеклист по умолчанию при создании рабочей области
func defaultChecklist(spaceID, workspaceID string) []dbmodels.ChecklistItem {
	base := dbmodels.BaseSpaceModel{SpaceID: spaceID}
	return []dbmodels.ChecklistItem{
		{BaseSpaceModel: base, WorkspaceID: workspaceID, Title: "Минута составлена и вычитана", Category: "preparo", Blocking: true},
		{BaseSpaceModel: base, WorkspaceID: workspaceID, Title: "Приложения к минуте собраны", Category: "preparo", Blocking: false},
		{BaseSpaceModel: base, WorkspaceID: workspaceID, Title: "Расчет срока сверен с публикацией", Category: "prazo", Blocking: true},
	}
}

// GetOrCreate - идемпотентное создание рабочей области при первом открытии празо.
// Гонку параллельных созданий разрешает уникальный индекс по (space_id, deadline_id):
// проигравший вставку перечитывает существующую запись.
func (i impl) GetOrCreate(spaceID, deadlineID, userID string) (workspaceapimodels.WorkspaceView, error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("deadline_id", deadlineID)
	rec, err := i.store.GetByDeadline(spaceID, deadlineID)
	if err != nil {
		return workspaceapimodels.WorkspaceView{}, err
	}
	if rec != nil {
		return i.GetByID(spaceID, rec.ID)
	}
	newRec := dbmodels.Workspace{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		DeadlineID:     deadlineID,
		Phase:          models.PhaseDraft,
	}
	recID, err := i.store.Create(newRec)
	if err != nil {
		// параллельное создание по тому же празо: перечитываем
		existing, getErr := i.store.GetByDeadline(spaceID, deadlineID)
		if getErr == nil && existing != nil {
			return i.GetByID(spaceID, existing.ID)
		}
		logger.WithError(err).Error("ошибка создания рабочей области")
		return workspaceapimodels.WorkspaceView{}, errors.Wrap(err, "ошибка создания рабочей области")
	}
	for _, item := range defaultChecklist(spaceID, recID) {
		if _, err = i.checklistStore.Create(item); err != nil {
			logger.WithError(err).Error("ошибка создания чеклиста по умолчанию")
			return workspaceapimodels.WorkspaceView{}, err
		}
	}
	logger.WithField("workspace_id", recID).Info("рабочая область создана")
	return i.GetByID(spaceID, recID)
}

func (i impl) GetByID(spaceID, id string) (workspaceapimodels.WorkspaceView, error) {
	rec, err := i.store.GetFullByID(spaceID, id)
	if err != nil {
		return workspaceapimodels.WorkspaceView{}, err
	}
	if rec == nil {
		return workspaceapimodels.WorkspaceView{}, models.ErrRecNotFound
	}
	return workspaceapimodels.WorkspaceConvert(*rec), nil
}

// ChangePhase - запрос перехода между фазами.
// Условия всегда проверяются по свежепрочитанному состоянию,
// агрегатам со стороны клиента машина не доверяет.
func (i impl) ChangePhase(spaceID, id, userID string, data workspaceapimodels.PhaseChangeData) (workspaceapimodels.WorkspaceView, error) {
	logger := i.GetLogger(spaceID, id).
		WithField("target_phase", data.TargetPhase)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return workspaceapimodels.WorkspaceView{}, err
	}
	if rec == nil {
		return workspaceapimodels.WorkspaceView{}, models.ErrRecNotFound
	}
	if rec.Locked {
		return workspaceapimodels.WorkspaceView{}, models.ErrWorkspaceLocked
	}
	if !rec.Phase.IsAllowChange(data.TargetPhase) {
		return workspaceapimodels.WorkspaceView{}, models.ErrInvalidTransition
	}
	if rec.Phase.IsBackward(data.TargetPhase) && data.Reason == "" {
		return workspaceapimodels.WorkspaceView{}, models.NewPreconditionError("не указана причина возврата на доработку")
	}
	if err = i.checkPreconditions(spaceID, id, rec.Phase, data.TargetPhase); err != nil {
		return workspaceapimodels.WorkspaceView{}, err
	}

	now := time.Now()
	updMap := map[string]interface{}{
		"phase":            data.TargetPhase,
		"phase_changed_at": now,
	}
	err = i.store.Update(spaceID, id, rec.Version, updMap)
	if err != nil {
		if !errors.Is(err, models.ErrConcurrentModification) {
			logger.WithError(err).Error("ошибка смены фазы")
		}
		return workspaceapimodels.WorkspaceView{}, err
	}
	i.audit(spaceID, id, userID, rec.Phase, data.TargetPhase, data.Reason)
	logger.Info("фаза рабочей области изменена")
	return i.GetByID(spaceID, id)
}

// checkPreconditions - блокирующие условия по целевому ребру перехода
func (i impl) checkPreconditions(spaceID, id string, current, target models.WorkspacePhase) error {
	unmet := []string{}
	switch {
	case current == models.PhaseDraft && target == models.PhaseReview:
		principal, err := i.documentStore.GetActivePrincipal(spaceID, id)
		if err != nil {
			return err
		}
		// заглушка без файла основной минутой не считается
		if principal == nil || principal.IsPending() {
			unmet = append(unmet, "отсутствует основная минута")
		}
		blocking, err := i.checklistStore.CountBlockingUnchecked(spaceID, id)
		if err != nil {
			return err
		}
		if blocking > 0 {
			unmet = append(unmet, "не отмечены блокирующие пункты чеклиста")
		}
	case current == models.PhaseApproval && target == models.PhaseFiling:
		total, err := i.approvalStore.CountAll(spaceID, id)
		if err != nil {
			return err
		}
		if total == 0 {
			unmet = append(unmet, "не запрошено ни одного согласования")
		}
		pending, err := i.approvalStore.CountByStatus(spaceID, id, models.AStatusPending)
		if err != nil {
			return err
		}
		if pending > 0 {
			unmet = append(unmet, "есть согласования без решения")
		}
	case current == models.PhaseFiling && target == models.PhaseClosed:
		filing, err := i.filingStore.GetByWorkspace(spaceID, id)
		if err != nil {
			return err
		}
		if filing == nil || !filing.IsComplete() {
			unmet = append(unmet, "протокол не заполнен: нужны номер и время подачи")
		}
	}
	if len(unmet) > 0 {
		return models.NewPreconditionError(unmet...)
	}
	return nil
}

// ToggleLock - ручная блокировка, доступна в любой фазе без условий
func (i impl) ToggleLock(spaceID, id, userID string, locked bool) (workspaceapimodels.WorkspaceView, error) {
	logger := i.GetLogger(spaceID, id).
		WithField("locked", locked)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return workspaceapimodels.WorkspaceView{}, err
	}
	if rec == nil {
		return workspaceapimodels.WorkspaceView{}, models.ErrRecNotFound
	}
	updMap := map[string]interface{}{
		"locked": locked,
	}
	err = i.store.Update(spaceID, id, rec.Version, updMap)
	if err != nil {
		return workspaceapimodels.WorkspaceView{}, err
	}
	logger.Info("блокировка рабочей области изменена")
	return i.GetByID(spaceID, id)
}

// Stats - производные счетчики, всегда пересчитываются по записям
func (i impl) Stats(spaceID, id string) (workspaceapimodels.StatsView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return workspaceapimodels.StatsView{}, err
	}
	if rec == nil {
		return workspaceapimodels.StatsView{}, models.ErrRecNotFound
	}
	stats := workspaceapimodels.StatsView{}
	checklist, err := i.checklistStore.List(spaceID, id)
	if err != nil {
		return workspaceapimodels.StatsView{}, err
	}
	for _, item := range checklist {
		stats.ChecklistTotal++
		if item.Checked {
			stats.ChecklistDone++
		}
		if item.Blocking && !item.Checked {
			stats.BlockingUnchecked++
		}
	}
	pending, err := i.approvalStore.CountByStatus(spaceID, id, models.AStatusPending)
	if err != nil {
		return workspaceapimodels.StatsView{}, err
	}
	stats.PendingApprovals = int(pending)
	comments, err := i.commentStore.Count(spaceID, id)
	if err != nil {
		return workspaceapimodels.StatsView{}, err
	}
	stats.TotalComments = int(comments)
	documents, err := i.documentStore.List(spaceID, id)
	if err != nil {
		return workspaceapimodels.StatsView{}, err
	}
	for _, doc := range documents {
		stats.TotalDocuments++
		stats.TotalSize += doc.FileSize
	}
	return stats, nil
}

func (i impl) audit(spaceID, workspaceID, userID string, oldPhase, newPhase models.WorkspacePhase, reason string) {
	rec := dbmodels.WorkspaceHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		WorkspaceID:    workspaceID,
		UserID:         userID,
		Changes: dbmodels.PhaseChanges{
			OldPhase: oldPhase,
			NewPhase: newPhase,
			Reason:   reason,
		},
	}
	if _, err := i.historyStore.Create(rec); err != nil {
		i.GetLogger(spaceID, workspaceID).WithError(err).Error("ошибка записи журнала смены фазы")
	}
}
