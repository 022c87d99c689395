package repositories

import (
	"time"

	"concierge-server/db"
	"concierge-server/entities"
)

type roomPgRepository struct {
	db db.Database
}

func NewRoomPgRepository(database db.Database) RoomRepository {
	return &roomPgRepository{db: database}
}

func (r *roomPgRepository) Create(room *entities.Room) error {
	return r.db.GetDB().Create(room).Error
}

func (r *roomPgRepository) GetBySlug(slug string) (*entities.Room, error) {
	var room entities.Room
	err := r.db.GetDB().Where("slug = ?", slug).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomPgRepository) GetAll() ([]entities.Room, error) {
	var rooms []entities.Room
	err := r.db.GetDB().Order("name ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomPgRepository) Update(room *entities.Room) error {
	room.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(room).Error
}

// UpdateGallery overwrites only the gallery column. Single-row write; a
// concurrent edit to the same room can still lose (last write wins).
func (r *roomPgRepository) UpdateGallery(slug string, gallery entities.GalleryPayload) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Model(&entities.Room{}).Where("slug = ?", slug).Updates(map[string]interface{}{
		"gallery":    gallery,
		"updated_at": now,
	}).Error
}

func (r *roomPgRepository) Delete(slug string) error {
	return r.db.GetDB().Where("slug = ?", slug).Delete(&entities.Room{}).Error
}
