package domain

import "time"

type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentProcessing DocumentStatus = "processing"
	DocumentCompleted  DocumentStatus = "completed"
	DocumentFailed     DocumentStatus = "failed"
)

// ValidDocumentStatus reports whether s is one of the known lifecycle states.
func ValidDocumentStatus(s DocumentStatus) bool {
	switch s {
	case DocumentPending, DocumentProcessing, DocumentCompleted, DocumentFailed:
		return true
	}
	return false
}

type Document struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64          `gorm:"index;not null" json:"user_id"`
	GoogleDocID string         `gorm:"size:255;uniqueIndex;not null" json:"google_doc_id"`
	Title       *string        `gorm:"size:500" json:"title"`
	Status      DocumentStatus `gorm:"size:16;index;not null;default:pending" json:"status"`
	ContentHash *string        `gorm:"size:64" json:"content_hash"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	CheckResults []CheckResult `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Document) TableName() string { return "documents" }
