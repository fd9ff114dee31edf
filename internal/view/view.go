// Package view projects domain records into render-ready structures. The
// browser renders these declaratively; no business logic lives past this
// point. Everything here is recomputed from fresh backend data on every
// request and never persisted.
package view

import (
	"medportal/internal/attachment"
	"medportal/internal/model"
)

// AttachmentItem is one attachment as the exam detail screen renders it.
type AttachmentItem struct {
	FileName  string              `json:"file_name"`
	URL       string              `json:"url"`
	Extension string              `json:"extension"`
	Category  attachment.Category `json:"category"`
	Label     string              `json:"label"`
	Icon      string              `json:"icon"`
	Preview   attachment.Plan     `json:"preview"`
}

// CategoryBadge is one non-empty entry of the document-type breakdown.
type CategoryBadge struct {
	Category attachment.Category `json:"category"`
	Label    string              `json:"label"`
	Icon     string              `json:"icon"`
	Count    int                 `json:"count"`
}

// ExamDetail is the full exam modal view: record fields, the attachment
// list and the category summary.
type ExamDetail struct {
	Exam        model.Exam        `json:"exam"`
	Attachments []AttachmentItem  `json:"attachments"`
	TotalFiles  int               `json:"total_files"`
	Counts      attachment.Counts `json:"counts"`
	Badges      []CategoryBadge   `json:"badges"`
}

// Dashboard is the landing view: aggregate stats plus the consultation
// history shown on first load.
type Dashboard struct {
	Stats         model.DashboardStats `json:"stats"`
	Consultations []model.Consultation `json:"consultations"`
}

// NewDashboard assembles the landing view from fresh backend data.
func NewDashboard(stats *model.DashboardStats, consultations []model.Consultation) *Dashboard {
	d := &Dashboard{Consultations: consultations}
	if stats != nil {
		d.Stats = *stats
	}
	return d
}

// NewAttachmentItem projects one reference into its render form.
func NewAttachmentItem(ref attachment.Ref) AttachmentItem {
	category := ref.Category()
	return AttachmentItem{
		FileName:  ref.FileName(),
		URL:       ref.URL,
		Extension: ref.Extension(),
		Category:  category,
		Label:     category.Label(),
		Icon:      category.Icon(),
		Preview:   attachment.PlanPreview(ref),
	}
}

// NewExamDetail rebuilds the exam view from the latest record. The
// attachment set and counts are derived here and nowhere cached.
func NewExamDetail(exam model.Exam) *ExamDetail {
	set := attachment.Parse(exam.FileURL)
	items := make([]AttachmentItem, len(set))
	for i, ref := range set {
		items[i] = NewAttachmentItem(ref)
	}
	counts := attachment.Summarize(set)
	return &ExamDetail{
		Exam:        exam,
		Attachments: items,
		TotalFiles:  len(set),
		Counts:      counts,
		Badges:      badges(counts),
	}
}

// badges keeps only the categories with at least one file, in display
// order.
func badges(counts attachment.Counts) []CategoryBadge {
	out := make([]CategoryBadge, 0, len(attachment.Categories))
	for _, c := range attachment.Categories {
		if counts[c] == 0 {
			continue
		}
		out = append(out, CategoryBadge{
			Category: c,
			Label:    c.Label(),
			Icon:     c.Icon(),
			Count:    counts[c],
		})
	}
	return out
}
