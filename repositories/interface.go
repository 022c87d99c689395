package repositories

import "concierge-server/entities"

type RoomRepository interface {
	Create(room *entities.Room) error
	GetBySlug(slug string) (*entities.Room, error)
	GetAll() ([]entities.Room, error)
	Update(room *entities.Room) error
	UpdateGallery(slug string, gallery entities.GalleryPayload) error
	Delete(slug string) error
}
