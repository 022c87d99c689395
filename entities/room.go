package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is one configured property. The slug is the only identifier ever
// exposed outside the server; the numeric-style ID stays internal.
type Room struct {
	ID           string         `gorm:"primaryKey" json:"-"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	WifiSSID     string         `json:"wifi_ssid"`
	WifiPass     string         `json:"wifi_pass"`
	ACGuide      string         `json:"ac_guide"`
	Rules        string         `json:"rules"`
	CheckIn      string         `json:"checkin"`
	CheckOut     string         `json:"checkout"`
	Trash        string         `json:"trash"`
	Laundry      string         `json:"laundry"`
	Facilities   string         `json:"facilities"`
	OtherInfo    string         `json:"other_info"`
	LogoURL      string         `json:"logo_url"`
	PrimaryColor string         `json:"primary_color"`
	FAQPayload   FAQPayload     `gorm:"type:jsonb" json:"faq_payload"`
	Gallery      GalleryPayload `gorm:"type:jsonb" json:"gallery_payload"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().Format(time.RFC3339)
	r.UpdatedAt = r.CreatedAt
	return
}

// Guidebook renders the structured guide fields as the labeled-line blob
// embedded into the concierge system prompt. Empty fields are kept so the
// model knows the host left them blank.
func (r *Room) Guidebook() string {
	lines := []string{
		"CHECK-IN: " + r.CheckIn,
		"CHECK-OUT: " + r.CheckOut,
		"TRASH DISPOSAL: " + r.Trash,
		"LAUNDRY: " + r.Laundry,
		"FACILITIES: " + r.Facilities,
		"OTHER INFO: " + r.OtherInfo,
	}
	return strings.Join(lines, "\n")
}

// RoomInfo is the public, pre-chat slice of a room: branding plus the
// quick-question menu. Wifi credentials and guide contents stay private
// until the guest asks the concierge.
type RoomInfo struct {
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	LogoURL      string     `json:"logo_url"`
	PrimaryColor string     `json:"primary_color"`
	FAQPayload   FAQPayload `json:"faq_payload"`
}

func (r *Room) Info() RoomInfo {
	faq := r.FAQPayload
	if faq == nil {
		faq = FAQPayload{}
	}
	return RoomInfo{
		Slug:         r.Slug,
		Name:         r.Name,
		LogoURL:      r.LogoURL,
		PrimaryColor: r.PrimaryColor,
		FAQPayload:   faq,
	}
}

// FAQCategory groups quick questions under a title and an icon tag.
type FAQCategory struct {
	Title     string   `json:"title"`
	Icon      Icon     `json:"icon"`
	Questions []string `json:"questions"`
}

// FAQPayload is stored as a jsonb column. It is always an array, never
// null: NULL or empty column values scan to an empty (non-nil) slice so
// consumers never branch on nil.
type FAQPayload []FAQCategory

func (p FAQPayload) Value() (driver.Value, error) {
	if p == nil {
		p = FAQPayload{}
	}
	return json.Marshal(p)
}

func (p *FAQPayload) Scan(value interface{}) error {
	*p = FAQPayload{}
	return scanJSON(value, p)
}

// GalleryItem is one labeled image the concierge may reference in answers.
type GalleryItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// GalleryPayload is stored as a jsonb column with the same never-null
// contract as FAQPayload.
type GalleryPayload []GalleryItem

func (p GalleryPayload) Value() (driver.Value, error) {
	if p == nil {
		p = GalleryPayload{}
	}
	return json.Marshal(p)
}

func (p *GalleryPayload) Scan(value interface{}) error {
	*p = GalleryPayload{}
	return scanJSON(value, p)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.New("malformed jsonb payload: " + err.Error())
	}
	return nil
}
