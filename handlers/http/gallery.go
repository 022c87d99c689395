package httpHandler

import (
	"io"
	"net/http"
	"path/filepath"

	"concierge-server/cache"
	"concierge-server/entities"
	"concierge-server/storage"
	"concierge-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type GalleryHandler struct {
	useCase   *usecases.RoomUseCase
	store     storage.ObjectStore
	infoCache *cache.RoomInfoCache
}

func NewGalleryHandler(useCase *usecases.RoomUseCase, store storage.ObjectStore, infoCache *cache.RoomInfoCache) *GalleryHandler {
	return &GalleryHandler{
		useCase:   useCase,
		store:     store,
		infoCache: infoCache,
	}
}

// AddItem handles POST /api/v1/rooms/:slug/gallery. The binary goes to
// the object store first; only the public URL is persisted.
func (h *GalleryHandler) AddItem(c *gin.Context) {
	slug := c.Param("slug")
	label := c.PostForm("label")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "image file is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "could not read uploaded file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "could not read uploaded file",
		})
		return
	}

	itemID := uuid.New().String()
	path := slug + "/" + itemID + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.store.Upload(c.Request.Context(), path, contentType, data)
	if err != nil {
		log.Errorf("gallery upload failed for room %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload image",
		})
		return
	}

	item := entities.GalleryItem{ID: itemID, Label: label, URL: url}
	if err := h.useCase.AddGalleryItem(slug, item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	h.infoCache.Invalidate(slug)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Gallery item added",
		"data":    item,
	})
}

// RemoveItem handles DELETE /api/v1/rooms/:slug/gallery/:item_id. The
// stored binary is left in place; only the JSON array is filtered.
func (h *GalleryHandler) RemoveItem(c *gin.Context) {
	slug := c.Param("slug")
	itemID := c.Param("item_id")

	if err := h.useCase.RemoveGalleryItem(slug, itemID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	h.infoCache.Invalidate(slug)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery item removed",
	})
}
