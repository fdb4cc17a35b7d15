package dbmodels

// Comment - свободный комментарий к рабочей области, только добавляется,
// на переходы между фазами не влияет
type Comment struct {
	BaseSpaceModel
	WorkspaceID string `gorm:"type:varchar(36);index"`
	AuthorID    string `gorm:"type:varchar(36)"`
	Text        string
}
