package models

// EditCapability - уровень доступа на редактирование для фазы/документа
type EditCapability string

const (
	CapabilityFullEdit EditCapability = "full_edit"
	CapabilityAddOnly  EditCapability = "add_only"
	CapabilityReadOnly EditCapability = "read_only"
)

func (c EditCapability) AllowMutate() bool {
	return c != CapabilityReadOnly
}
