package models

// WorkspacePhase - фаза рабочей области празо
type WorkspacePhase string

const (
	PhaseDraft    WorkspacePhase = "draft"    // подготовка минуты
	PhaseReview   WorkspacePhase = "review"   // ревизия
	PhaseApproval WorkspacePhase = "approval" // согласование
	PhaseFiling   WorkspacePhase = "filing"   // протоколирование в суде
	PhaseClosed   WorkspacePhase = "closed"   // закрыто
)

var phaseOrder = map[WorkspacePhase]int{
	PhaseDraft:    0,
	PhaseReview:   1,
	PhaseApproval: 2,
	PhaseFiling:   3,
	PhaseClosed:   4,
}

func (p WorkspacePhase) IsValid() bool {
	_, ok := phaseOrder[p]
	return ok
}

func (p WorkspacePhase) Order() int {
	order, ok := phaseOrder[p]
	if !ok {
		return -1
	}
	return order
}

func (p WorkspacePhase) IsBefore(other WorkspacePhase) bool {
	return p.IsValid() && other.IsValid() && p.Order() < other.Order()
}

// IsAllowChange - допустимые переходы между фазами,
// единственный обратный переход review -> draft (возврат на доработку)
func (p WorkspacePhase) IsAllowChange(target WorkspacePhase) bool {
	switch p {
	case PhaseDraft:
		return target == PhaseReview
	case PhaseReview:
		return target == PhaseApproval || target == PhaseDraft
	case PhaseApproval:
		return target == PhaseFiling
	case PhaseFiling:
		return target == PhaseClosed
	}
	return false
}

// IsBackward - переход с обязательной причиной возврата
func (p WorkspacePhase) IsBackward(target WorkspacePhase) bool {
	return p == PhaseReview && target == PhaseDraft
}
