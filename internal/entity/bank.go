package entity

import "time"

// Bank is an append-only dictionary row mapping a short bank code to a
// display name. Rows are created lazily on first sighting during ingestion
// and never updated.
type Bank struct {
	ID        uint      `gorm:"column:bank_id;primaryKey" json:"bank_id"`
	BankName  string    `gorm:"unique;not null" json:"bank_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Bank model.
func (Bank) TableName() string {
	return "banks"
}
