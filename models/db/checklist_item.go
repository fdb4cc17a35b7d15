package dbmodels

// ChecklistItem - задача подготовки минуты.
// Блокирующие пункты не дают завершить фазу draft, пока не отмечены.
type ChecklistItem struct {
	BaseSpaceModel
	WorkspaceID string `gorm:"type:varchar(36);index"`
	Title       string `gorm:"type:varchar(255)"`
	Category    string `gorm:"type:varchar(100)"`
	Checked     bool
	Blocking    bool
}
