package models

import "time"

// CartSnapshot model - PostgreSQL (raw cart JSON keyed by storage key)
type CartSnapshot struct {
	CartKey   string    `gorm:"primaryKey;size:191" json:"cart_key"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}

// CartSnapshotDocument model - MongoDB
type CartSnapshotDocument struct {
	Key       string    `bson:"_id" json:"key"`
	Data      string    `bson:"data" json:"data"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
