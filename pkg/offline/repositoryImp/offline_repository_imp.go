package repositoryImp

import (
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/offline/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OfflineRepository { return &repo{db} }

func (r *repo) Save(i *entities.OfflineInteraction) error { return r.db.Create(i).Error }

func (r *repo) Unsynced(phone string) ([]entities.OfflineInteraction, error) {
	var is []entities.OfflineInteraction
	err := r.db.Where("user_phone = ? AND synced = ?", phone, false).Order("created_at").Find(&is).Error
	return is, err
}

func (r *repo) MarkSynced(phone string) (int64, error) {
	res := r.db.Model(&entities.OfflineInteraction{}).
		Where("user_phone = ? AND synced = ?", phone, false).
		Update("synced", true)
	return res.RowsAffected, res.Error
}
