package entities

import "time"

// OfflineInteraction logs one walk through the offline decision tree so it can
// be synced to the backend later.
type OfflineInteraction struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	UserPhone string   `gorm:"index" json:"user_phone"`
	Path      []string `gorm:"serializer:json" json:"path"` // node ids, root to leaf
	Question  string   `json:"question"`
	Synced    bool     `gorm:"index" json:"synced"`
	CreatedAt time.Time `json:"created_at"`
}
