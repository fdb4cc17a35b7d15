package workspacehandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

const (
	testSpaceID     = "space-1"
	testWorkspaceID = "ws-1"
	testUserID      = "user-1"
)

type fakeWorkspaceStore struct {
	rec *dbmodels.Workspace
	// имитация проигрыша гонки вставки: Create падает,
	// а запись победителя появляется в хранилище
	createErr   error
	conflictRec *dbmodels.Workspace
}

func (f *fakeWorkspaceStore) Create(rec dbmodels.Workspace) (string, error) {
	if f.createErr != nil {
		f.rec = f.conflictRec
		return "", f.createErr
	}
	rec.ID = testWorkspaceID
	f.rec = &rec
	return rec.ID, nil
}

func (f *fakeWorkspaceStore) GetByID(spaceID, id string) (*dbmodels.Workspace, error) {
	if f.rec == nil || f.rec.ID != id || f.rec.SpaceID != spaceID {
		return nil, nil
	}
	cp := *f.rec
	return &cp, nil
}

func (f *fakeWorkspaceStore) GetFullByID(spaceID, id string) (*dbmodels.Workspace, error) {
	return f.GetByID(spaceID, id)
}

func (f *fakeWorkspaceStore) GetByDeadline(spaceID, deadlineID string) (*dbmodels.Workspace, error) {
	if f.rec == nil || f.rec.DeadlineID != deadlineID || f.rec.SpaceID != spaceID {
		return nil, nil
	}
	cp := *f.rec
	return &cp, nil
}

func (f *fakeWorkspaceStore) Update(spaceID, id string, version int64, updMap map[string]interface{}) error {
	if f.rec == nil || f.rec.ID != id || f.rec.SpaceID != spaceID || f.rec.Version != version {
		return models.ErrConcurrentModification
	}
	if v, ok := updMap["phase"]; ok {
		f.rec.Phase = v.(models.WorkspacePhase)
	}
	if v, ok := updMap["phase_changed_at"]; ok {
		at := v.(time.Time)
		f.rec.PhaseChangedAt = &at
	}
	if v, ok := updMap["locked"]; ok {
		f.rec.Locked = v.(bool)
	}
	f.rec.Version++
	return nil
}

func (f *fakeWorkspaceStore) Touch(spaceID, id string, version int64) error {
	return f.Update(spaceID, id, version, map[string]interface{}{})
}

type fakeDocumentStore struct {
	list []dbmodels.Document
}

func (f *fakeDocumentStore) Create(rec dbmodels.Document) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeDocumentStore) GetByID(spaceID, id string) (*dbmodels.Document, error) {
	for _, doc := range f.list {
		if doc.ID == id {
			cp := doc
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeDocumentStore) Delete(spaceID, id string) error {
	return nil
}

func (f *fakeDocumentStore) List(spaceID, workspaceID string) ([]dbmodels.Document, error) {
	return f.list, nil
}

func (f *fakeDocumentStore) GetActivePrincipal(spaceID, workspaceID string) (*dbmodels.Document, error) {
	for _, doc := range f.list {
		if doc.IsActivePrincipal() {
			cp := doc
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeChecklistStore struct {
	list []dbmodels.ChecklistItem
}

func (f *fakeChecklistStore) Create(rec dbmodels.ChecklistItem) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeChecklistStore) GetByID(spaceID, id string) (*dbmodels.ChecklistItem, error) {
	for _, item := range f.list {
		if item.ID == id {
			cp := item
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeChecklistStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeChecklistStore) List(spaceID, workspaceID string) ([]dbmodels.ChecklistItem, error) {
	return f.list, nil
}

func (f *fakeChecklistStore) CountBlockingUnchecked(spaceID, workspaceID string) (int64, error) {
	var count int64
	for _, item := range f.list {
		if item.Blocking && !item.Checked {
			count++
		}
	}
	return count, nil
}

type fakeApprovalStore struct {
	list []dbmodels.ApprovalRequest
}

func (f *fakeApprovalStore) Create(rec dbmodels.ApprovalRequest) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeApprovalStore) GetByID(spaceID, id string) (*dbmodels.ApprovalRequest, error) {
	for _, rec := range f.list {
		if rec.ID == id {
			cp := rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeApprovalStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeApprovalStore) List(spaceID, workspaceID string) ([]dbmodels.ApprovalRequest, error) {
	return f.list, nil
}

func (f *fakeApprovalStore) CountByStatus(spaceID, workspaceID string, status models.ApprovalStatus) (int64, error) {
	var count int64
	for _, rec := range f.list {
		if rec.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeApprovalStore) CountAll(spaceID, workspaceID string) (int64, error) {
	return int64(len(f.list)), nil
}

func (f *fakeApprovalStore) MaxRound(spaceID, workspaceID string) (int, error) {
	round := 0
	for _, rec := range f.list {
		if rec.Round > round {
			round = rec.Round
		}
	}
	return round, nil
}

type fakeFilingStore struct {
	rec *dbmodels.FilingRecord
}

func (f *fakeFilingStore) Save(rec dbmodels.FilingRecord) (string, error) {
	f.rec = &rec
	return rec.ID, nil
}

func (f *fakeFilingStore) GetByWorkspace(spaceID, workspaceID string) (*dbmodels.FilingRecord, error) {
	if f.rec == nil {
		return nil, nil
	}
	cp := *f.rec
	return &cp, nil
}

type fakeCommentStore struct {
	list []dbmodels.Comment
}

func (f *fakeCommentStore) Create(rec dbmodels.Comment) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeCommentStore) List(spaceID, workspaceID string) ([]dbmodels.Comment, error) {
	return f.list, nil
}

func (f *fakeCommentStore) Count(spaceID, workspaceID string) (int64, error) {
	return int64(len(f.list)), nil
}

type fakeHistoryStore struct {
	list []dbmodels.WorkspaceHistory
}

func (f *fakeHistoryStore) Create(rec dbmodels.WorkspaceHistory) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeHistoryStore) List(spaceID, workspaceID string) ([]dbmodels.WorkspaceHistory, error) {
	return f.list, nil
}

type testEnv struct {
	handler   impl
	wsStore   *fakeWorkspaceStore
	docStore  *fakeDocumentStore
	clStore   *fakeChecklistStore
	apStore   *fakeApprovalStore
	flStore   *fakeFilingStore
	cmStore   *fakeCommentStore
	histStore *fakeHistoryStore
}

func newTestEnv(phase models.WorkspacePhase) testEnv {
	wsStore := &fakeWorkspaceStore{
		rec: &dbmodels.Workspace{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				BaseModel: dbmodels.BaseModel{ID: testWorkspaceID},
				SpaceID:   testSpaceID,
			},
			DeadlineID: "deadline-1",
			Phase:      phase,
			Version:    1,
		},
	}
	docStore := &fakeDocumentStore{}
	clStore := &fakeChecklistStore{}
	apStore := &fakeApprovalStore{}
	flStore := &fakeFilingStore{}
	cmStore := &fakeCommentStore{}
	histStore := &fakeHistoryStore{}
	return testEnv{
		handler: impl{
			store:          wsStore,
			documentStore:  docStore,
			checklistStore: clStore,
			approvalStore:  apStore,
			filingStore:    flStore,
			commentStore:   cmStore,
			historyStore:   histStore,
		},
		wsStore:   wsStore,
		docStore:  docStore,
		clStore:   clStore,
		apStore:   apStore,
		flStore:   flStore,
		cmStore:   cmStore,
		histStore: histStore,
	}
}

func fileIDPtr(v string) *string {
	return &v
}

func principalDoc() dbmodels.Document {
	return dbmodels.Document{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			BaseModel: dbmodels.BaseModel{ID: "doc-1"},
			SpaceID:   testSpaceID,
		},
		WorkspaceID: testWorkspaceID,
		Title:       "минута",
		FileID:      fileIDPtr("file-1"),
		IsPrincipal: true,
		OriginPhase: models.PhaseDraft,
	}
}

func TestChangePhase(t *testing.T) {
	t.Run("draft->review без минуты отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		pErr, ok := models.AsPreconditionError(err)
		require.True(t, ok)
		require.Contains(t, pErr.Unmet, "отсутствует основная минута")
	})

	t.Run("заглушка без файла минутой не считается", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		pending := principalDoc()
		pending.FileID = nil
		env.docStore.list = append(env.docStore.list, pending)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		pErr, ok := models.AsPreconditionError(err)
		require.True(t, ok)
		require.Contains(t, pErr.Unmet, "отсутствует основная минута")
	})

	t.Run("draft->review с блокирующим пунктом отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		env.docStore.list = append(env.docStore.list, principalDoc())
		env.clStore.list = append(env.clStore.list, dbmodels.ChecklistItem{
			WorkspaceID: testWorkspaceID,
			Title:       "Минута составлена и вычитана",
			Blocking:    true,
		})
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		pErr, ok := models.AsPreconditionError(err)
		require.True(t, ok)
		require.Contains(t, pErr.Unmet, "не отмечены блокирующие пункты чеклиста")

		// после отметки пункта тот же запрос проходит
		env.clStore.list[0].Checked = true
		view, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		require.Nil(t, err)
		require.Equal(t, models.PhaseReview, view.Phase)
	})

	t.Run("draft->review при выполненных условиях", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		env.docStore.list = append(env.docStore.list, principalDoc())
		view, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		require.Nil(t, err)
		require.Equal(t, models.PhaseReview, view.Phase)
		require.NotNil(t, view.PhaseChangedAt)
		require.Equal(t, int64(2), view.Version)
	})

	t.Run("пропуск фазы отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseApproval})
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("повторный запрос текущей фазы отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("возврат на доработку без причины отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseDraft})
		_, ok := models.AsPreconditionError(err)
		require.True(t, ok)
	})

	t.Run("возврат на доработку с причиной", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		view, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseDraft, Reason: "не хватает приложений"})
		require.Nil(t, err)
		require.Equal(t, models.PhaseDraft, view.Phase)
		require.Len(t, env.histStore.list, 1)
		require.Equal(t, "не хватает приложений", env.histStore.list[0].Changes.Reason)
	})

	t.Run("approval->filing без согласований отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseApproval)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseFiling})
		pErr, ok := models.AsPreconditionError(err)
		require.True(t, ok)
		require.Contains(t, pErr.Unmet, "не запрошено ни одного согласования")
	})

	t.Run("approval->filing с нерешенным согласованием отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseApproval)
		env.apStore.list = append(env.apStore.list, dbmodels.ApprovalRequest{
			WorkspaceID: testWorkspaceID,
			Round:       1,
			Status:      models.AStatusPending,
		})
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseFiling})
		pErr, ok := models.AsPreconditionError(err)
		require.True(t, ok)
		require.Contains(t, pErr.Unmet, "есть согласования без решения")
	})

	t.Run("approval->filing когда решения вынесены", func(t *testing.T) {
		env := newTestEnv(models.PhaseApproval)
		env.apStore.list = append(env.apStore.list, dbmodels.ApprovalRequest{
			WorkspaceID: testWorkspaceID,
			Round:       1,
			Status:      models.AStatusApprovedWithCaveats,
		})
		view, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseFiling})
		require.Nil(t, err)
		require.Equal(t, models.PhaseFiling, view.Phase)
	})

	t.Run("filing->closed без полного протокола отклоняется", func(t *testing.T) {
		env := newTestEnv(models.PhaseFiling)
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseClosed})
		pErr, ok := models.AsPreconditionError(err)
		require.True(t, ok)
		require.Contains(t, pErr.Unmet, "протокол не заполнен: нужны номер и время подачи")

		env.flStore.rec = &dbmodels.FilingRecord{
			WorkspaceID:  testWorkspaceID,
			FilingSystem: "ПЖЕ",
		}
		_, err = env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseClosed})
		_, ok = models.AsPreconditionError(err)
		require.True(t, ok)
	})

	t.Run("filing->closed с полным протоколом", func(t *testing.T) {
		env := newTestEnv(models.PhaseFiling)
		now := time.Now()
		env.flStore.rec = &dbmodels.FilingRecord{
			WorkspaceID:  testWorkspaceID,
			FilingSystem: "ПЖЕ",
			FilingNumber: "2026-001",
			FiledAt:      &now,
		}
		view, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseClosed})
		require.Nil(t, err)
		require.Equal(t, models.PhaseClosed, view.Phase)
	})

	t.Run("заблокированная область не меняет фазу", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		env.wsStore.rec.Locked = true
		_, err := env.handler.ChangePhase(testSpaceID, testWorkspaceID, testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseApproval})
		require.ErrorIs(t, err, models.ErrWorkspaceLocked)
	})

	t.Run("конфликт версий", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		env.wsStore.rec.Version = 7
		first, err := env.handler.store.GetByID(testSpaceID, testWorkspaceID)
		require.Nil(t, err)

		// параллельная мутация успела раньше
		err = env.wsStore.Touch(testSpaceID, testWorkspaceID, first.Version)
		require.Nil(t, err)

		err = env.wsStore.Update(testSpaceID, testWorkspaceID, first.Version, map[string]interface{}{
			"phase": models.PhaseApproval,
		})
		require.ErrorIs(t, err, models.ErrConcurrentModification)
	})

	t.Run("неизвестная рабочая область", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		_, err := env.handler.ChangePhase(testSpaceID, "missing", testUserID,
			workspaceapimodels.PhaseChangeData{TargetPhase: models.PhaseReview})
		require.ErrorIs(t, err, models.ErrRecNotFound)
	})
}

func TestToggleLock(t *testing.T) {
	t.Run("блокировка и разблокировка", func(t *testing.T) {
		env := newTestEnv(models.PhaseFiling)
		view, err := env.handler.ToggleLock(testSpaceID, testWorkspaceID, testUserID, true)
		require.Nil(t, err)
		require.True(t, view.Locked)

		view, err = env.handler.ToggleLock(testSpaceID, testWorkspaceID, testUserID, false)
		require.Nil(t, err)
		require.False(t, view.Locked)
	})
}

func TestStats(t *testing.T) {
	t.Run("счетчики пересчитываются по записям", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		env.clStore.list = []dbmodels.ChecklistItem{
			{WorkspaceID: testWorkspaceID, Checked: true, Blocking: true},
			{WorkspaceID: testWorkspaceID, Checked: false, Blocking: true},
			{WorkspaceID: testWorkspaceID, Checked: false, Blocking: false},
		}
		env.apStore.list = []dbmodels.ApprovalRequest{
			{WorkspaceID: testWorkspaceID, Status: models.AStatusPending},
			{WorkspaceID: testWorkspaceID, Status: models.AStatusApproved},
		}
		env.cmStore.list = []dbmodels.Comment{
			{WorkspaceID: testWorkspaceID, Text: "проверить расчет срока"},
		}
		doc := principalDoc()
		doc.FileSize = 2048
		env.docStore.list = []dbmodels.Document{doc}

		stats, err := env.handler.Stats(testSpaceID, testWorkspaceID)
		require.Nil(t, err)
		require.Equal(t, workspaceapimodels.StatsView{
			ChecklistDone:     1,
			ChecklistTotal:    3,
			BlockingUnchecked: 1,
			PendingApprovals:  1,
			TotalComments:     1,
			TotalDocuments:    1,
			TotalSize:         2048,
		}, stats)
	})
}

func TestGetOrCreate(t *testing.T) {
	t.Run("повторное открытие возвращает существующую область", func(t *testing.T) {
		env := newTestEnv(models.PhaseReview)
		view, err := env.handler.GetOrCreate(testSpaceID, "deadline-1", testUserID)
		require.Nil(t, err)
		require.Equal(t, testWorkspaceID, view.ID)
		require.Equal(t, models.PhaseReview, view.Phase)
	})

	t.Run("первое открытие создает область с чеклистом по умолчанию", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		env.wsStore.rec = nil
		view, err := env.handler.GetOrCreate(testSpaceID, "deadline-2", testUserID)
		require.Nil(t, err)
		require.Equal(t, models.PhaseDraft, view.Phase)
		require.Equal(t, "deadline-2", env.wsStore.rec.DeadlineID)
		require.Len(t, env.clStore.list, 3)
		blocking := 0
		for _, item := range env.clStore.list {
			require.Equal(t, view.ID, item.WorkspaceID)
			if item.Blocking {
				blocking++
			}
		}
		require.Equal(t, 2, blocking)
	})

	t.Run("проигравший вставку получает область победителя", func(t *testing.T) {
		env := newTestEnv(models.PhaseDraft)
		winner := *env.wsStore.rec
		env.wsStore.rec = nil
		env.wsStore.createErr = errors.New(`duplicate key value violates unique constraint "idx_workspace_deadline"`)
		env.wsStore.conflictRec = &winner

		view, err := env.handler.GetOrCreate(testSpaceID, "deadline-1", testUserID)
		require.Nil(t, err)
		require.Equal(t, testWorkspaceID, view.ID)
		// чеклист победителя не засевается повторно
		require.Empty(t, env.clStore.list)
	})
}
