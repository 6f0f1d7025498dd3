package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"usersapi/internal/http/handlers"
	"usersapi/internal/http/middleware"
	"usersapi/internal/ws"
)

func NewRouter(
	users *handlers.UsersHandler,
	health *handlers.HealthHandler,
	hub *ws.Hub,
	corsOrigins []string,
	log *zap.SugaredLogger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", health.Health)
	r.GET("/hello", handlers.Hello)

	r.POST("/users", users.Create)
	r.GET("/users", users.List)
	r.GET("/users/:id", users.Get)
	r.PUT("/users/:id", users.Update)
	r.DELETE("/users/:id", users.Delete)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		hub.Join(conn)
		go func() {
			defer func() { hub.Leave(conn); conn.Close() }()
			for {
				// subscribers only listen; reads just detect the close
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
