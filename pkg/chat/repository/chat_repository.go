package repository

import "krishisakhi/entities"

type ChatRepository interface {
	Save(m *entities.ChatMessage) error
	// History returns the most recent messages for a user, oldest first.
	History(phone string, limit int) ([]entities.ChatMessage, error)
	Clear(phone string) error
}
