package httpHandler

import (
	"net/http"

	"concierge-server/cache"
	"concierge-server/entities"
	"concierge-server/usecases"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chat      *usecases.ChatUseCase
	rooms     *usecases.RoomUseCase
	infoCache *cache.RoomInfoCache
}

func NewChatHandler(chat *usecases.ChatUseCase, rooms *usecases.RoomUseCase, infoCache *cache.RoomInfoCache) *ChatHandler {
	return &ChatHandler{
		chat:      chat,
		rooms:     rooms,
		infoCache: infoCache,
	}
}

type chatRequest struct {
	Message string              `json:"message"`
	History []entities.ChatTurn `json:"history"`
}

// SendMessage handles POST /api/v1/rooms/:slug/chat. The response is
// always the chat envelope with HTTP 200; failure lives in the success
// flag so the guest UI has one rendering path.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	slug := c.Param("slug")

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entities.ChatResult{
			Success:  false,
			Response: "System Error: invalid request body",
		})
		return
	}

	result := h.chat.SendMessage(c.Request.Context(), slug, req.Message, req.History)
	c.JSON(http.StatusOK, result)
}

// GetRoomInfo handles GET /api/v1/rooms/:slug/info — the public branding
// and quick-question menu the guest page renders before the first turn.
func (h *ChatHandler) GetRoomInfo(c *gin.Context) {
	slug := c.Param("slug")

	if info, ok := h.infoCache.Get(slug); ok {
		c.JSON(http.StatusOK, gin.H{"data": info})
		return
	}

	room, err := h.rooms.GetRoom(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Room not found",
		})
		return
	}

	info := room.Info()
	h.infoCache.Set(slug, info)
	c.JSON(http.StatusOK, gin.H{"data": info})
}
