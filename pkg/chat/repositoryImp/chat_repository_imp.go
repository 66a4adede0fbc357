package repositoryImp

import (
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/chat/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &repo{db} }

func (r *repo) Save(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *repo) History(phone string, limit int) ([]entities.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var ms []entities.ChatMessage
	err := r.db.Where("user_phone = ?", phone).Order("msg_id DESC").Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, err
	}
	// reverse to oldest-first for prompt assembly
	for i, j := 0, len(ms)-1; i < j; i, j = i+1, j-1 {
		ms[i], ms[j] = ms[j], ms[i]
	}
	return ms, nil
}

func (r *repo) Clear(phone string) error {
	return r.db.Where("user_phone = ?", phone).Delete(&entities.ChatMessage{}).Error
}
