package domain

import "time"

// Issue is a single formatting violation reported by the checker.
type Issue struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
}

type CheckResult struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DocumentID       int64     `gorm:"index;not null" json:"document_id"`
	TemplateID       int64     `gorm:"index;not null" json:"template_id"`
	Passed           bool      `gorm:"not null" json:"passed"`
	OverallScore     *float64  `json:"overall_score"`
	IssuesCount      int       `gorm:"not null;default:0" json:"issues_count"`
	Issues           []Issue   `gorm:"type:jsonb;serializer:json;not null" json:"issues"`
	ProcessingTimeMs int       `gorm:"not null" json:"processing_time_ms"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CheckResult) TableName() string { return "check_results" }
