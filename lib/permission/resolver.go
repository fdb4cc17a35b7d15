package permission

import (
	"juris-tools-backend/models"
)

// Resolve - вычисляет уровень доступа на редактирование.
// currentPhase - текущая фаза рабочей области,
// viewingPhase - фаза, которую просматривает пользователь,
// originPhase - фаза добавления конкретного документа (nil для уровня рабочей области).
//
// Правила в порядке приоритета:
//  1. просмотр завершенной фазы - только чтение;
//  2. закрытая рабочая область - только чтение;
//  3. draft - полный доступ автора;
//  4. review/approval - полный доступ к добавленному в текущей фазе,
//     добавление нового разрешено, более ранние документы только для чтения;
//  5. filing - только регистрация протокола, реестр только для чтения.
func Resolve(currentPhase, viewingPhase models.WorkspacePhase, originPhase *models.WorkspacePhase) models.EditCapability {
	if viewingPhase.IsBefore(currentPhase) {
		return models.CapabilityReadOnly
	}
	if currentPhase == models.PhaseClosed {
		return models.CapabilityReadOnly
	}
	if viewingPhase != currentPhase {
		return models.CapabilityReadOnly
	}
	switch currentPhase {
	case models.PhaseDraft:
		return models.CapabilityFullEdit
	case models.PhaseReview, models.PhaseApproval:
		if originPhase == nil {
			return models.CapabilityAddOnly
		}
		if *originPhase == currentPhase {
			return models.CapabilityFullEdit
		}
		return models.CapabilityReadOnly
	case models.PhaseFiling:
		return models.CapabilityReadOnly
	}
	return models.CapabilityReadOnly
}
