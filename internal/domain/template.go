package domain

import "time"

// TemplateParams groups the formatting rules a document is checked against.
// The rule values are opaque to this service; the checker interprets them.
type TemplateParams struct {
	Page       map[string]interface{} `json:"page"`
	Typography map[string]interface{} `json:"typography"`
	Headings   map[string]interface{} `json:"headings"`
	Numbering  map[string]interface{} `json:"numbering"`
}

type Template struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string         `gorm:"size:1000;not null" json:"description"`
	Params      TemplateParams `gorm:"type:jsonb;serializer:json;not null" json:"params"`
	IsActive    bool           `gorm:"index;not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string { return "templates" }
