package models

// ApprovalStatus - статус задачи согласования минуты
type ApprovalStatus string

const (
	AStatusPending             ApprovalStatus = "pending"
	AStatusApproved            ApprovalStatus = "approved"
	AStatusApprovedWithCaveats ApprovalStatus = "approved_with_caveats"
	AStatusRejected            ApprovalStatus = "rejected"
)

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case AStatusPending, AStatusApproved, AStatusApprovedWithCaveats, AStatusRejected:
		return true
	}
	return false
}

// IsDecision - статусы, допустимые при вынесении решения
func (s ApprovalStatus) IsDecision() bool {
	return s.IsValid() && s != AStatusPending
}
