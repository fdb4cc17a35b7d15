package workspaceapimodels

import (
	"time"

	dbmodels "juris-tools-backend/models/db"

	"github.com/pkg/errors"
)

type CommentData struct {
	Text string `json:"text"`
}

func (c CommentData) Validate() error {
	if c.Text == "" {
		return errors.New("отсутсвует текст комментария")
	}
	return nil
}

type CommentView struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func CommentConvert(rec dbmodels.Comment) CommentView {
	return CommentView{
		ID:        rec.ID,
		AuthorID:  rec.AuthorID,
		Text:      rec.Text,
		CreatedAt: rec.CreatedAt,
	}
}
