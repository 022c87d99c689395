package usecases

import (
	"errors"
	"strings"

	"concierge-server/entities"
	"concierge-server/repositories"
)

// RoomForm carries the flat form-encoded field set the admin pages
// submit. Create and update use the identical set; every edit resubmits
// the entire form (partial updates are not supported).
type RoomForm struct {
	Name         string
	Address      string
	WifiSSID     string
	WifiPass     string
	ACGuide      string
	Rules        string
	CheckIn      string
	CheckOut     string
	Trash        string
	Laundry      string
	Facilities   string
	OtherInfo    string
	LogoURL      string
	PrimaryColor string
	FAQText      string
}

type RoomUseCase struct {
	RoomRepo repositories.RoomRepository
}

func NewRoomUseCase(roomRepo repositories.RoomRepository) *RoomUseCase {
	return &RoomUseCase{RoomRepo: roomRepo}
}

func validateForm(form *RoomForm) error {
	if form.Name == "" {
		return errors.New("property name is required")
	}
	if form.Address == "" {
		return errors.New("address is required")
	}
	if form.WifiSSID == "" {
		return errors.New("wifi ssid is required")
	}
	if form.WifiPass == "" {
		return errors.New("wifi password is required")
	}
	return nil
}

// parseFAQText turns the newline-delimited quick-question box into the
// stored payload: one default category, blank lines dropped, order kept.
func parseFAQText(text string) entities.FAQPayload {
	questions := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	if len(questions) == 0 {
		return entities.FAQPayload{}
	}
	return entities.FAQPayload{
		{Title: "Quick Questions", Icon: entities.IconInfo, Questions: questions},
	}
}

func applyForm(room *entities.Room, form *RoomForm) {
	room.Name = form.Name
	room.Address = form.Address
	room.WifiSSID = form.WifiSSID
	room.WifiPass = form.WifiPass
	room.ACGuide = form.ACGuide
	room.Rules = form.Rules
	room.CheckIn = form.CheckIn
	room.CheckOut = form.CheckOut
	room.Trash = form.Trash
	room.Laundry = form.Laundry
	room.Facilities = form.Facilities
	room.OtherInfo = form.OtherInfo
	room.LogoURL = form.LogoURL
	room.PrimaryColor = form.PrimaryColor
	room.FAQPayload = parseFAQText(form.FAQText)
}

// CreateRoom validates the form, mints a fresh slug and persists the room.
func (uc *RoomUseCase) CreateRoom(form *RoomForm) (*entities.Room, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	slug, err := NewSlug()
	if err != nil {
		return nil, err
	}

	room := &entities.Room{
		Slug:    slug,
		Gallery: entities.GalleryPayload{},
	}
	applyForm(room, form)

	if err := uc.RoomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateRoom overwrites every form-derived field of the room keyed by
// slug. The slug itself and the gallery are preserved.
func (uc *RoomUseCase) UpdateRoom(slug string, form *RoomForm) (*entities.Room, error) {
	if slug == "" {
		return nil, errors.New("room slug is required")
	}
	if err := validateForm(form); err != nil {
		return nil, err
	}

	room, err := uc.RoomRepo.GetBySlug(slug)
	if err != nil {
		return nil, errors.New("room not found")
	}

	applyForm(room, form)

	if err := uc.RoomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes the room by slug. Deleting a slug that does not
// exist is not an error at this layer.
func (uc *RoomUseCase) DeleteRoom(slug string) error {
	if slug == "" {
		return errors.New("room slug is required")
	}
	return uc.RoomRepo.Delete(slug)
}

func (uc *RoomUseCase) GetRoom(slug string) (*entities.Room, error) {
	if slug == "" {
		return nil, errors.New("room slug is required")
	}
	return uc.RoomRepo.GetBySlug(slug)
}

func (uc *RoomUseCase) GetAllRooms() ([]entities.Room, error) {
	return uc.RoomRepo.GetAll()
}

// AddGalleryItem appends an uploaded image reference to the room's
// gallery. Fetch-compute-overwrite on the jsonb column; concurrent edits
// to the same room race and the last write wins.
func (uc *RoomUseCase) AddGalleryItem(slug string, item entities.GalleryItem) error {
	if item.Label == "" {
		return errors.New("gallery label is required")
	}
	if item.URL == "" {
		return errors.New("gallery image url is required")
	}

	room, err := uc.RoomRepo.GetBySlug(slug)
	if err != nil {
		return errors.New("room not found")
	}

	gallery := append(room.Gallery, item)
	return uc.RoomRepo.UpdateGallery(slug, gallery)
}

// RemoveGalleryItem filters the gallery by item id. Unknown ids are a
// no-op write.
func (uc *RoomUseCase) RemoveGalleryItem(slug, itemID string) error {
	if itemID == "" {
		return errors.New("gallery item id is required")
	}

	room, err := uc.RoomRepo.GetBySlug(slug)
	if err != nil {
		return errors.New("room not found")
	}

	gallery := entities.GalleryPayload{}
	for _, item := range room.Gallery {
		if item.ID != itemID {
			gallery = append(gallery, item)
		}
	}
	return uc.RoomRepo.UpdateGallery(slug, gallery)
}
