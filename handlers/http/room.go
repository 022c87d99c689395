package httpHandler

import (
	"net/http"

	"concierge-server/cache"
	"concierge-server/usecases"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type RoomHandler struct {
	useCase   *usecases.RoomUseCase
	infoCache *cache.RoomInfoCache
}

func NewRoomHandler(useCase *usecases.RoomUseCase, infoCache *cache.RoomInfoCache) *RoomHandler {
	return &RoomHandler{
		useCase:   useCase,
		infoCache: infoCache,
	}
}

func roomFormFromRequest(c *gin.Context) *usecases.RoomForm {
	return &usecases.RoomForm{
		Name:         c.PostForm("name"),
		Address:      c.PostForm("address"),
		WifiSSID:     c.PostForm("wifi_ssid"),
		WifiPass:     c.PostForm("wifi_pass"),
		ACGuide:      c.PostForm("ac_guide"),
		Rules:        c.PostForm("rules"),
		CheckIn:      c.PostForm("checkin"),
		CheckOut:     c.PostForm("checkout"),
		Trash:        c.PostForm("trash"),
		Laundry:      c.PostForm("laundry"),
		Facilities:   c.PostForm("facilities"),
		OtherInfo:    c.PostForm("other_info"),
		LogoURL:      c.PostForm("logo_url"),
		PrimaryColor: c.PostForm("primary_color"),
		FAQText:      c.PostForm("faq_text"),
	}
}

// CreateRoom handles POST /api/v1/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	form := roomFormFromRequest(c)

	room, err := h.useCase.CreateRoom(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Room created successfully",
		"data":    room,
	})
}

// GetAllRooms handles GET /api/v1/rooms
func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	rooms, err := h.useCase.GetAllRooms()
	if err != nil {
		log.Errorf("failed to list rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve rooms",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rooms,
		"count": len(rooms),
	})
}

// GetRoom handles GET /api/v1/rooms/:slug
func (h *RoomHandler) GetRoom(c *gin.Context) {
	slug := c.Param("slug")

	room, err := h.useCase.GetRoom(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Room not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": room,
	})
}

// UpdateRoom handles PUT /api/v1/rooms/:slug
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	slug := c.Param("slug")
	form := roomFormFromRequest(c)

	room, err := h.useCase.UpdateRoom(slug, form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	h.infoCache.Invalidate(slug)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room updated successfully",
		"data":    room,
	})
}

// DeleteRoom handles DELETE /api/v1/rooms/:slug
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.useCase.DeleteRoom(slug); err != nil {
		log.Errorf("failed to delete room %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete room",
		})
		return
	}

	h.infoCache.Invalidate(slug)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room deleted successfully",
	})
}
