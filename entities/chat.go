package entities

import "time"

type ChatMessage struct {
	MsgID     uint      `gorm:"primaryKey" json:"msg_id"`
	UserPhone string    `gorm:"index" json:"user_phone"`
	Sender    string    `json:"sender"` // user|bot
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
