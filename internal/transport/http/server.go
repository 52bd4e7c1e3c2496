package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/webBlaster/room-rant-backend/internal/config"
	"github.com/webBlaster/room-rant-backend/internal/core"
	"github.com/webBlaster/room-rant-backend/internal/store"
)

// NewServer builds the HTTP server with all routes registered.
func NewServer(hub *core.Hub, st store.Store, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware())

	rooms := NewRoomHandlers(hub, st, logger)
	stream := NewStreamHandler(hub, cfg.KeepAliveInterval, logger)

	router.GET("/", welcomeHandler)
	router.GET("/health", healthHandler)
	router.GET("/rooms", rooms.ListRooms)
	router.POST("/rooms/:room_id/join", rooms.JoinRoom)
	router.POST("/rooms/:room_id/messages", rooms.SendMessage)
	router.GET("/rooms/:room_id/stream", stream.Stream)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func welcomeHandler(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, gin.H{"message": "Welcome to Room Rant API!"})
}

func healthHandler(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, gin.H{"status": "healthy"})
}
