package repository

import "krishisakhi/entities"

type OfflineRepository interface {
	Save(i *entities.OfflineInteraction) error
	Unsynced(phone string) ([]entities.OfflineInteraction, error)
	MarkSynced(phone string) (int64, error)
}
