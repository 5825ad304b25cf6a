package entity

import "time"

// Theme is an append-only dictionary row for a theme label, insert-if-absent
// by name during enrichment linking.
type Theme struct {
	ID        uint      `gorm:"column:theme_id;primaryKey" json:"theme_id"`
	ThemeName string    `gorm:"unique;not null" json:"theme_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Theme model.
func (Theme) TableName() string {
	return "themes"
}
