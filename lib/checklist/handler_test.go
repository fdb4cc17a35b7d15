package checklisthandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"juris-tools-backend/models"
	workspaceapimodels "juris-tools-backend/models/api/workspace"
	dbmodels "juris-tools-backend/models/db"
)

const (
	testSpaceID     = "space-1"
	testWorkspaceID = "ws-1"
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

type fakeChecklistStore struct {
	seq  int
	list []dbmodels.ChecklistItem
}

func (f *fakeChecklistStore) Create(rec dbmodels.ChecklistItem) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("item-%v", f.seq)
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
	for idx := range f.list {
		if f.list[idx].ID != id {
			continue
		}
		if v, ok := updMap["checked"]; ok {
			f.list[idx].Checked = v.(bool)
		}
	}
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

func newTestImpl(phase models.WorkspacePhase) (impl, *fakeChecklistStore, *fakeWorkspaceStore) {
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
	store := &fakeChecklistStore{}
	return impl{store: store, wsStore: wsStore}, store, wsStore
}

func TestToggle(t *testing.T) {
	t.Run("отметка и снятие отметки", func(t *testing.T) {
		handler, store, _ := newTestImpl(models.PhaseDraft)
		id, err := handler.AddItem(testSpaceID, testWorkspaceID, workspaceapimodels.ChecklistItemData{
			Title:    "Минута составлена и вычитана",
			Category: "preparo",
			Blocking: true,
		})
		require.Nil(t, err)

		err = handler.Toggle(testSpaceID, testWorkspaceID, id, true)
		require.Nil(t, err)
		require.True(t, store.list[0].Checked)

		err = handler.Toggle(testSpaceID, testWorkspaceID, id, false)
		require.Nil(t, err)
		require.False(t, store.list[0].Checked)
	})

	t.Run("в фазе filing чеклист только для чтения", func(t *testing.T) {
		handler, store, wsStore := newTestImpl(models.PhaseDraft)
		id, err := handler.AddItem(testSpaceID, testWorkspaceID, workspaceapimodels.ChecklistItemData{Title: "пункт"})
		require.Nil(t, err)

		wsStore.rec.Phase = models.PhaseFiling
		err = handler.Toggle(testSpaceID, testWorkspaceID, id, true)
		require.ErrorIs(t, err, models.ErrReadOnly)
		require.False(t, store.list[0].Checked)
	})

	t.Run("заблокированная область", func(t *testing.T) {
		handler, _, wsStore := newTestImpl(models.PhaseDraft)
		wsStore.rec.Locked = true
		err := handler.Toggle(testSpaceID, testWorkspaceID, "item-1", true)
		require.ErrorIs(t, err, models.ErrWorkspaceLocked)
	})

	t.Run("неизвестный пункт", func(t *testing.T) {
		handler, _, _ := newTestImpl(models.PhaseDraft)
		err := handler.Toggle(testSpaceID, testWorkspaceID, "missing", true)
		require.ErrorIs(t, err, models.ErrRecNotFound)
	})
}

func TestIsSatisfied(t *testing.T) {
	t.Run("неблокирующие пункты не мешают", func(t *testing.T) {
		handler, store, _ := newTestImpl(models.PhaseDraft)
		store.list = []dbmodels.ChecklistItem{
			{WorkspaceID: testWorkspaceID, Title: "блокирующий", Blocking: true, Checked: true},
			{WorkspaceID: testWorkspaceID, Title: "необязательный", Blocking: false, Checked: false},
		}
		ok, err := handler.IsSatisfied(testSpaceID, testWorkspaceID)
		require.Nil(t, err)
		require.True(t, ok)
	})

	t.Run("блокирующий неотмеченный пункт мешает", func(t *testing.T) {
		handler, store, _ := newTestImpl(models.PhaseDraft)
		store.list = []dbmodels.ChecklistItem{
			{WorkspaceID: testWorkspaceID, Title: "блокирующий", Blocking: true, Checked: false},
		}
		ok, err := handler.IsSatisfied(testSpaceID, testWorkspaceID)
		require.Nil(t, err)
		require.False(t, ok)
	})
}
