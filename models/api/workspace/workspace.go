package workspaceapimodels

import (
	"time"

	"juris-tools-backend/models"
	dbmodels "juris-tools-backend/models/db"

	"github.com/pkg/errors"
)

type WorkspaceView struct {
	ID             string                `json:"id"`
	DeadlineID     string                `json:"deadline_id"`
	Phase          models.WorkspacePhase `json:"phase"`
	Locked         bool                  `json:"locked"`
	Version        int64                 `json:"version"`
	CreatedAt      time.Time             `json:"created_at"`
	PhaseChangedAt *time.Time            `json:"phase_changed_at"`

	Documents      []DocumentView      `json:"documents,omitempty"`
	ChecklistItems []ChecklistItemView `json:"checklist_items,omitempty"`
	Approvals      []ApprovalView      `json:"approvals,omitempty"`
	FilingRecord   *FilingRecordView   `json:"filing_record,omitempty"`
	Comments       []CommentView       `json:"comments,omitempty"`
}

func WorkspaceConvert(rec dbmodels.Workspace) WorkspaceView {
	view := WorkspaceView{
		ID:             rec.ID,
		DeadlineID:     rec.DeadlineID,
		Phase:          rec.Phase,
		Locked:         rec.Locked,
		Version:        rec.Version,
		CreatedAt:      rec.CreatedAt,
		PhaseChangedAt: rec.PhaseChangedAt,
	}
	for _, doc := range rec.Documents {
		view.Documents = append(view.Documents, DocumentConvert(doc, rec.Phase))
	}
	for _, item := range rec.ChecklistItems {
		view.ChecklistItems = append(view.ChecklistItems, ChecklistItemConvert(item))
	}
	for _, approval := range rec.Approvals {
		view.Approvals = append(view.Approvals, ApprovalConvert(approval))
	}
	if rec.FilingRecord != nil {
		fView := FilingRecordConvert(*rec.FilingRecord)
		view.FilingRecord = &fView
	}
	for _, comment := range rec.Comments {
		view.Comments = append(view.Comments, CommentConvert(comment))
	}
	return view
}

type PhaseChangeData struct {
	TargetPhase models.WorkspacePhase `json:"target_phase"`
	Reason      string                `json:"reason"`
}

func (p PhaseChangeData) Validate() error {
	if !p.TargetPhase.IsValid() {
		return errors.Errorf("неизвестная фаза: %v", p.TargetPhase)
	}
	return nil
}

type LockData struct {
	Locked bool `json:"locked"`
}

func (p LockData) Validate() error {
	return nil
}

type StatsView struct {
	ChecklistDone     int   `json:"checklist_done"`
	ChecklistTotal    int   `json:"checklist_total"`
	BlockingUnchecked int   `json:"blocking_unchecked"`
	PendingApprovals  int   `json:"pending_approvals"`
	TotalComments     int   `json:"total_comments"`
	TotalDocuments    int   `json:"total_documents"`
	TotalSize         int64 `json:"total_size"`
}

type HistoryView struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	OldPhase  models.WorkspacePhase `json:"old_phase"`
	NewPhase  models.WorkspacePhase `json:"new_phase"`
	Reason    string                `json:"reason,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

func HistoryConvert(rec dbmodels.WorkspaceHistory) HistoryView {
	return HistoryView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		OldPhase:  rec.Changes.OldPhase,
		NewPhase:  rec.Changes.NewPhase,
		Reason:    rec.Changes.Reason,
		CreatedAt: rec.CreatedAt,
	}
}
