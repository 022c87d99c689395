package server

import (
	"time"

	"concierge-server/ai"
	"concierge-server/cache"
	"concierge-server/confs"
	"concierge-server/db"
	httpHandler "concierge-server/handlers/http"
	"concierge-server/repositories"
	"concierge-server/storage"
	"concierge-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app  *gin.Engine
	db   db.Database
	conf *confs.Config
}

func NewServer(database db.Database, conf *confs.Config) *Server {
	return &Server{
		app:  gin.Default(),
		db:   database,
		conf: conf,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	roomRepo := repositories.NewRoomPgRepository(s.db)

	// Initialize external clients
	provider := ai.NewGeminiClient(s.conf.GeminiAPIKey, s.conf.GeminiModel)
	objectStore := storage.NewSupabaseStore(s.conf.StorageURL, s.conf.StorageKey, s.conf.StorageBucket)

	// Initialize use cases
	roomUseCase := usecases.NewRoomUseCase(roomRepo)
	chatUseCase := usecases.NewChatUseCase(roomRepo, provider)

	// Public room info is read-heavy (every guest page load); cache it
	infoCache := cache.NewRoomInfoCache(5 * time.Minute)

	// Initialize handlers
	roomHandler := httpHandler.NewRoomHandler(roomUseCase, infoCache)
	chatHandler := httpHandler.NewChatHandler(chatUseCase, roomUseCase, infoCache)
	galleryHandler := httpHandler.NewGalleryHandler(roomUseCase, objectStore, infoCache)

	gate := httpHandler.NewAuthGate(s.conf.AdminUser, s.conf.AdminPassword, gin.Mode() == gin.ReleaseMode)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Guest-facing routes, never gated
		rooms := api.Group("/rooms")
		{
			rooms.GET("/:slug/info", chatHandler.GetRoomInfo)
			rooms.POST("/:slug/chat", chatHandler.SendMessage)
		}

		// Admin routes behind the access gate
		admin := api.Group("/rooms", gate.Middleware())
		{
			admin.GET("", roomHandler.GetAllRooms)
			admin.POST("", roomHandler.CreateRoom)
			admin.GET("/:slug", roomHandler.GetRoom)
			admin.PUT("/:slug", roomHandler.UpdateRoom)
			admin.DELETE("/:slug", roomHandler.DeleteRoom)
			admin.POST("/:slug/gallery", galleryHandler.AddItem)
			admin.DELETE("/:slug/gallery/:item_id", galleryHandler.RemoveItem)
		}
	}

	// Guest entry point: /<slug> resolves the room for the chat client
	s.app.GET("/:slug", chatHandler.GetRoomInfo)

	if err := s.app.Run("0.0.0.0:" + s.conf.Port); err != nil {
		panic(err)
	}
}
