package permission

import (
	"testing"

	"github.com/stretchr/testify/require"

	"juris-tools-backend/models"
)

func phasePtr(p models.WorkspacePhase) *models.WorkspacePhase {
	return &p
}

func TestResolve(t *testing.T) {
	t.Run("просмотр завершенной фазы только для чтения", func(t *testing.T) {
		got := Resolve(models.PhaseApproval, models.PhaseDraft, nil)
		require.Equal(t, models.CapabilityReadOnly, got)

		got = Resolve(models.PhaseApproval, models.PhaseReview, phasePtr(models.PhaseReview))
		require.Equal(t, models.CapabilityReadOnly, got)
	})

	t.Run("закрытая рабочая область только для чтения", func(t *testing.T) {
		got := Resolve(models.PhaseClosed, models.PhaseClosed, nil)
		require.Equal(t, models.CapabilityReadOnly, got)

		got = Resolve(models.PhaseClosed, models.PhaseClosed, phasePtr(models.PhaseClosed))
		require.Equal(t, models.CapabilityReadOnly, got)
	})

	t.Run("в черновике полный доступ", func(t *testing.T) {
		got := Resolve(models.PhaseDraft, models.PhaseDraft, nil)
		require.Equal(t, models.CapabilityFullEdit, got)

		got = Resolve(models.PhaseDraft, models.PhaseDraft, phasePtr(models.PhaseDraft))
		require.Equal(t, models.CapabilityFullEdit, got)
	})

	t.Run("на ревизии добавление разрешено", func(t *testing.T) {
		got := Resolve(models.PhaseReview, models.PhaseReview, nil)
		require.Equal(t, models.CapabilityAddOnly, got)
	})

	t.Run("на ревизии документ текущей фазы редактируем", func(t *testing.T) {
		got := Resolve(models.PhaseReview, models.PhaseReview, phasePtr(models.PhaseReview))
		require.Equal(t, models.CapabilityFullEdit, got)
	})

	t.Run("на ревизии документ черновика только для чтения", func(t *testing.T) {
		got := Resolve(models.PhaseReview, models.PhaseReview, phasePtr(models.PhaseDraft))
		require.Equal(t, models.CapabilityReadOnly, got)
	})

	t.Run("на согласовании правила как на ревизии", func(t *testing.T) {
		got := Resolve(models.PhaseApproval, models.PhaseApproval, nil)
		require.Equal(t, models.CapabilityAddOnly, got)

		got = Resolve(models.PhaseApproval, models.PhaseApproval, phasePtr(models.PhaseApproval))
		require.Equal(t, models.CapabilityFullEdit, got)

		got = Resolve(models.PhaseApproval, models.PhaseApproval, phasePtr(models.PhaseReview))
		require.Equal(t, models.CapabilityReadOnly, got)
	})

	t.Run("на протоколировании реестр только для чтения", func(t *testing.T) {
		got := Resolve(models.PhaseFiling, models.PhaseFiling, nil)
		require.Equal(t, models.CapabilityReadOnly, got)

		got = Resolve(models.PhaseFiling, models.PhaseFiling, phasePtr(models.PhaseFiling))
		require.Equal(t, models.CapabilityReadOnly, got)
	})

	t.Run("возврат на доработку открывает документы черновика", func(t *testing.T) {
		// документ добавлен в черновике, область дошла до ревизии и вернулась
		origin := phasePtr(models.PhaseDraft)
		got := Resolve(models.PhaseReview, models.PhaseReview, origin)
		require.Equal(t, models.CapabilityReadOnly, got)

		got = Resolve(models.PhaseDraft, models.PhaseDraft, origin)
		require.Equal(t, models.CapabilityFullEdit, got)
	})
}
