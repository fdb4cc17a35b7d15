package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkspacePhase(t *testing.T) {
	t.Run("допустимые переходы", func(t *testing.T) {
		require.True(t, PhaseDraft.IsAllowChange(PhaseReview))
		require.True(t, PhaseReview.IsAllowChange(PhaseApproval))
		require.True(t, PhaseReview.IsAllowChange(PhaseDraft))
		require.True(t, PhaseApproval.IsAllowChange(PhaseFiling))
		require.True(t, PhaseFiling.IsAllowChange(PhaseClosed))
	})

	t.Run("пропуск фаз запрещен", func(t *testing.T) {
		require.False(t, PhaseDraft.IsAllowChange(PhaseApproval))
		require.False(t, PhaseDraft.IsAllowChange(PhaseFiling))
		require.False(t, PhaseDraft.IsAllowChange(PhaseClosed))
		require.False(t, PhaseReview.IsAllowChange(PhaseFiling))
		require.False(t, PhaseApproval.IsAllowChange(PhaseClosed))
	})

	t.Run("обратные переходы кроме review->draft запрещены", func(t *testing.T) {
		require.False(t, PhaseApproval.IsAllowChange(PhaseReview))
		require.False(t, PhaseApproval.IsAllowChange(PhaseDraft))
		require.False(t, PhaseFiling.IsAllowChange(PhaseApproval))
		require.False(t, PhaseClosed.IsAllowChange(PhaseFiling))
	})

	t.Run("закрытая фаза терминальна", func(t *testing.T) {
		for _, target := range []WorkspacePhase{PhaseDraft, PhaseReview, PhaseApproval, PhaseFiling, PhaseClosed} {
			require.False(t, PhaseClosed.IsAllowChange(target))
		}
	})

	t.Run("повторный запрос текущей фазы запрещен", func(t *testing.T) {
		for _, phase := range []WorkspacePhase{PhaseDraft, PhaseReview, PhaseApproval, PhaseFiling} {
			require.False(t, phase.IsAllowChange(phase))
		}
	})

	t.Run("признак возврата на доработку", func(t *testing.T) {
		require.True(t, PhaseReview.IsBackward(PhaseDraft))
		require.False(t, PhaseDraft.IsBackward(PhaseReview))
		require.False(t, PhaseReview.IsBackward(PhaseApproval))
	})

	t.Run("порядок фаз", func(t *testing.T) {
		require.True(t, PhaseDraft.IsBefore(PhaseReview))
		require.True(t, PhaseReview.IsBefore(PhaseClosed))
		require.False(t, PhaseFiling.IsBefore(PhaseDraft))
		require.False(t, PhaseDraft.IsBefore(PhaseDraft))
	})

	t.Run("валидация значения", func(t *testing.T) {
		require.True(t, PhaseApproval.IsValid())
		require.False(t, WorkspacePhase("archive").IsValid())
		require.Equal(t, -1, WorkspacePhase("archive").Order())
	})
}
