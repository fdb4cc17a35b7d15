package filinghandler

import (
	"testing"
	"time"

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
}

func (f *fakeWorkspaceStore) Create(rec dbmodels.Workspace) (string, error) {
	return rec.ID, nil
}

func (f *fakeWorkspaceStore) GetByID(spaceID, id string) (*dbmodels.Workspace, error) {
	if f.rec == nil || f.rec.ID != id {
		return nil, nil
	}
	cp := *f.rec
	return &cp, nil
}

func (f *fakeWorkspaceStore) GetFullByID(spaceID, id string) (*dbmodels.Workspace, error) {
	return f.GetByID(spaceID, id)
}

func (f *fakeWorkspaceStore) GetByDeadline(spaceID, deadlineID string) (*dbmodels.Workspace, error) {
	return nil, nil
}

func (f *fakeWorkspaceStore) Update(spaceID, id string, version int64, updMap map[string]interface{}) error {
	if f.rec == nil || f.rec.Version != version {
		return models.ErrConcurrentModification
	}
	f.rec.Version++
	return nil
}

func (f *fakeWorkspaceStore) Touch(spaceID, id string, version int64) error {
	return f.Update(spaceID, id, version, nil)
}

type fakeFilingStore struct {
	rec *dbmodels.FilingRecord
}

func (f *fakeFilingStore) Save(rec dbmodels.FilingRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = "filing-1"
	}
	f.rec = &rec
	return rec.ID, nil
}

func (f *fakeFilingStore) GetByWorkspace(spaceID, workspaceID string) (*dbmodels.FilingRecord, error) {
	if f.rec == nil || f.rec.WorkspaceID != workspaceID {
		return nil, nil
	}
	cp := *f.rec
	return &cp, nil
}

func newTestImpl(phase models.WorkspacePhase) (impl, *fakeFilingStore, *fakeWorkspaceStore) {
	wsStore := &fakeWorkspaceStore{
		rec: &dbmodels.Workspace{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				BaseModel: dbmodels.BaseModel{ID: testWorkspaceID},
				SpaceID:   testSpaceID,
			},
			Phase:   phase,
			Version: 1,
		},
	}
	store := &fakeFilingStore{}
	return impl{store: store, wsStore: wsStore}, store, wsStore
}

func TestRegister(t *testing.T) {
	t.Run("черновые значения перезаписываются", func(t *testing.T) {
		handler, store, _ := newTestImpl(models.PhaseFiling)
		view, err := handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
			FilingSystem: "ПЖЕ",
		})
		require.Nil(t, err)
		require.False(t, view.IsComplete)

		now := time.Now()
		view, err = handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
			FilingSystem: "ПЖЕ",
			FilingNumber: "2026-001",
			FiledAt:      &now,
		})
		require.Nil(t, err)
		require.True(t, view.IsComplete)
		require.Equal(t, "2026-001", store.rec.FilingNumber)
	})

	t.Run("не более одной записи на рабочую область", func(t *testing.T) {
		handler, store, _ := newTestImpl(models.PhaseFiling)
		first, err := handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
			FilingSystem: "ПЖЕ",
		})
		require.Nil(t, err)
		second, err := handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
			FilingSystem: "ЕСАЖ",
		})
		require.Nil(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, "ЕСАЖ", store.rec.FilingSystem)
	})

	t.Run("вне фазы filing регистрация запрещена", func(t *testing.T) {
		for _, phase := range []models.WorkspacePhase{models.PhaseDraft, models.PhaseReview, models.PhaseApproval} {
			handler, _, _ := newTestImpl(phase)
			_, err := handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
				FilingSystem: "ПЖЕ",
			})
			require.ErrorIs(t, err, models.ErrPermissionDenied, "фаза %v", phase)
		}
	})

	t.Run("после закрытия запись неизменяема", func(t *testing.T) {
		handler, _, _ := newTestImpl(models.PhaseClosed)
		_, err := handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
			FilingSystem: "ПЖЕ",
		})
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("заблокированная область", func(t *testing.T) {
		handler, _, wsStore := newTestImpl(models.PhaseFiling)
		wsStore.rec.Locked = true
		_, err := handler.Register(testSpaceID, testWorkspaceID, testUserID, workspaceapimodels.FilingRecordData{
			FilingSystem: "ПЖЕ",
		})
		require.ErrorIs(t, err, models.ErrWorkspaceLocked)
	})
}

func TestIsComplete(t *testing.T) {
	t.Run("полнота записи", func(t *testing.T) {
		handler, store, _ := newTestImpl(models.PhaseFiling)
		ok, err := handler.IsComplete(testSpaceID, testWorkspaceID)
		require.Nil(t, err)
		require.False(t, ok)

		now := time.Now()
		store.rec = &dbmodels.FilingRecord{
			WorkspaceID:  testWorkspaceID,
			FilingSystem: "ПЖЕ",
			FilingNumber: "2026-001",
			FiledAt:      &now,
		}
		ok, err = handler.IsComplete(testSpaceID, testWorkspaceID)
		require.Nil(t, err)
		require.True(t, ok)
	})
}
