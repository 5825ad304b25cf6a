package entity

import (
	"time"

	"github.com/lib/pq"
)

// Review is the atomic unit of the corpus. ReviewHash is the content-addressed
// identity: fixed at creation, unique, and the only deduplication key. The
// sentiment/theme columns are filled by the enrichment pass and are the only
// columns that pass ever touches.
type Review struct {
	ID             uint           `gorm:"column:review_id;primaryKey" json:"review_id"`
	ReviewHash     string         `gorm:"unique;not null" json:"review_hash"`
	BankID         uint           `gorm:"not null" json:"bank_id"`
	ReviewText     string         `gorm:"not null" json:"review_text"`
	Rating         int            `gorm:"not null" json:"rating"`
	ReviewDate     time.Time      `gorm:"type:date;not null" json:"review_date"`
	Source         string         `gorm:"not null" json:"source"`
	SentimentLabel *string        `json:"sentiment_label,omitempty"`
	SentimentScore *float64       `json:"sentiment_score,omitempty"`
	ThemePrimary   *string        `json:"theme_primary,omitempty"`
	Themes         pq.StringArray `gorm:"type:text[]" json:"themes,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Review model.
func (Review) TableName() string {
	return "reviews"
}

// ReviewTheme links a review to a theme. The (review, theme) pair is unique;
// repeated enrichment passes insert-or-ignore against it.
type ReviewTheme struct {
	ReviewID uint `gorm:"primaryKey" json:"review_id"`
	ThemeID  uint `gorm:"primaryKey" json:"theme_id"`
}

// TableName specifies the table name for the ReviewTheme model.
func (ReviewTheme) TableName() string {
	return "review_themes"
}
