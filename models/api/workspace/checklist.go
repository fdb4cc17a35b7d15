package workspaceapimodels

import (
	dbmodels "juris-tools-backend/models/db"

	"github.com/pkg/errors"
)

type ChecklistItemData struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Blocking bool   `json:"blocking"`
}

func (c ChecklistItemData) Validate() error {
	if c.Title == "" {
		return errors.New("отсутсвует название пункта")
	}
	return nil
}

type ChecklistToggleData struct {
	Checked bool `json:"checked"`
}

func (c ChecklistToggleData) Validate() error {
	return nil
}

type ChecklistItemView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
	Blocking bool   `json:"blocking"`
}

func ChecklistItemConvert(rec dbmodels.ChecklistItem) ChecklistItemView {
	return ChecklistItemView{
		ID:       rec.ID,
		Title:    rec.Title,
		Category: rec.Category,
		Checked:  rec.Checked,
		Blocking: rec.Blocking,
	}
}
